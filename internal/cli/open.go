package cli

import (
	"fmt"
	"strings"

	"scaffolder/internal/logging"
	"scaffolder/internal/setup"
	"scaffolder/internal/tree"
	"scaffolder/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the scaffolding screen (default command)",
		Long: strings.TrimSpace(`
Open the explorer, architecture diagram and code editor.

Without --tree the sample project is opened. Edits are saved in memory with
ctrl+s; ctrl+w closes the editor and asks before discarding unsaved changes.
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, app)
		},
	}
}

func newNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a project with the setup wizard, then open it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, app)
		},
	}
}

func runNew(cmd *cobra.Command, app *App) error {
	p, ok, err := tui.RunSetup()
	if err != nil {
		return writeErr(cmd, err)
	}
	if !ok {
		return nil
	}
	t, err := setup.Scaffold(p)
	if err != nil {
		return writeErr(cmd, err)
	}
	return runTUI(cmd, app, t, tree.ExpandAll(t), p.Name)
}

func runOpen(cmd *cobra.Command, app *App) error {
	t, expanded, err := loadTree(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	return runTUI(cmd, app, t, expanded, "")
}

func runTUI(cmd *cobra.Command, app *App, t *tree.Tree, expanded *tree.ExpansionSet, title string) error {
	log, err := tuiLogger(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("opening project", zap.String("title", title), zap.Int("expanded", expanded.Len()))
	if _, err := tui.Run(t, tui.Options{Title: title, Expanded: expanded, Logger: log}); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

// loadTree picks --tree, then the configured tree file, then the sample.
func loadTree(app *App) (*tree.Tree, *tree.ExpansionSet, error) {
	path := strings.TrimSpace(app.TreePath)
	if path == "" && app.cfg != nil {
		path = app.cfg.TUI.Tree
	}
	if path == "" {
		return tree.Sample(), tree.SampleExpanded(), nil
	}
	t, err := tree.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load tree: %w", err)
	}
	return t, tree.NewExpansionSet(), nil
}

func tuiLogger(app *App) (*zap.Logger, error) {
	logPath := app.LogFile
	if logPath == "" && app.cfg != nil {
		logPath = app.cfg.TUI.LogFile
	}
	return logging.ForTUI(logPath, app.Verbose)
}
