package tui

import (
	"fmt"

	"scaffolder/internal/dashboard"
	"scaffolder/internal/session"
	"scaffolder/internal/setup"
	"scaffolder/internal/tree"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type Options struct {
	// Title is shown in the header; defaults to "My Project".
	Title string
	// Active is the file opened first; empty picks README.md.
	Active   string
	Expanded *tree.ExpansionSet
	Logger   *zap.Logger
}

func applyPreferences() {
	applyGlyphPreference()
	applyColorProfilePreference()
	applyThemePreference()
}

// Run opens the scaffolding screen on t and blocks until the user quits.
// It returns the tree as last saved.
func Run(t *tree.Tree, opts Options) (*tree.Tree, error) {
	applyPreferences()

	sess, err := session.New(t, opts.Active, session.WithLogger(opts.Logger))
	if err != nil {
		return nil, err
	}
	final, err := tea.NewProgram(newAppModel(sess, opts), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("run tui: %w", err)
	}
	m, ok := final.(appModel)
	if !ok {
		return t, nil
	}
	if dirty := m.sess.DirtyFiles(); len(dirty) > 0 && opts.Logger != nil {
		opts.Logger.Info("quit with unsaved changes", zap.Strings("paths", dirty))
	}
	return m.sess.Tree(), nil
}

// RunSetup runs the new-project wizard. ok is false when the user cancelled.
func RunSetup() (p setup.Project, ok bool, err error) {
	applyPreferences()

	final, err := tea.NewProgram(newSetupModel(), tea.WithAltScreen()).Run()
	if err != nil {
		return setup.Project{}, false, fmt.Errorf("run setup: %w", err)
	}
	m, isSetup := final.(setupModel)
	if !isSetup || !m.done {
		return setup.Project{}, false, nil
	}
	return m.project, true, nil
}

// RunDashboard shows the projects table. newProject is true when the user
// chose "New Project" rather than quitting.
func RunDashboard(projects []dashboard.Project, log *zap.Logger) (newProject bool, err error) {
	applyPreferences()

	final, err := tea.NewProgram(newDashboardModel(projects, log), tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("run dashboard: %w", err)
	}
	m, ok := final.(dashboardModel)
	return ok && m.newProject, nil
}
