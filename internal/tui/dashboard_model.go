package tui

import (
	"fmt"
	"strings"
	"time"

	"scaffolder/internal/dashboard"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type dashboardKeyMap struct {
	Toggle    key.Binding
	ToggleAll key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	New       key.Binding
	Download  key.Binding
	Archive   key.Binding
	Delete    key.Binding
	Quit      key.Binding
}

// The table's own keymap binds space, d and f to scrolling, so these are
// matched before the table sees the key.
func defaultDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		NextPage:  key.NewBinding(key.WithKeys("right", "]", "l"), key.WithHelp("→", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("left", "[", "h"), key.WithHelp("←", "prev page")),
		New:       key.NewBinding(key.WithKeys("n", "+"), key.WithHelp("n", "new project")),
		Download:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
		Archive:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "archive")),
		Delete:    key.NewBinding(key.WithKeys("X", "delete"), key.WithHelp("X", "delete")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// dashboardModel lists projects in a table with a checkbox column.
type dashboardModel struct {
	projects []dashboard.Project
	sel      dashboard.Selection
	info     dashboard.PageInfo

	table table.Model
	keys  dashboardKeyMap
	log   *zap.Logger

	flashMsg string
	flashSeq int

	// Set when the user asked for a new project.
	newProject bool

	width  int
	height int
}

func newDashboardModel(projects []dashboard.Project, log *zap.Logger) dashboardModel {
	if log == nil {
		log = zap.NewNop()
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "", Width: 3},
			{Title: "Name", Width: 16},
			{Title: "Description", Width: 34},
			{Title: "Visibility", Width: 10},
			{Title: "Status", Width: 9},
			{Title: "Created", Width: 22},
			{Title: "Updated", Width: 22},
		}),
		table.WithFocused(true),
		table.WithHeight(dashboard.PageSize),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.BorderForeground(colorBorder).Bold(true)
	st.Selected = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg)
	t.SetStyles(st)

	m := dashboardModel{
		projects: projects,
		table:    t,
		keys:     defaultDashboardKeyMap(),
		log:      log,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.gotoPage(1)
	return m
}

func (m dashboardModel) Init() tea.Cmd { return nil }

func (m *dashboardModel) gotoPage(page int) {
	rows, info := dashboard.Paginate(m.projects, page, dashboard.PageSize)
	m.info = info
	m.renderRows(rows)
	m.table.SetCursor(0)
}

func (m *dashboardModel) pageRows() []dashboard.Project {
	rows, _ := dashboard.Paginate(m.projects, m.info.Page, dashboard.PageSize)
	return rows
}

func (m *dashboardModel) renderRows(rows []dashboard.Project) {
	out := make([]table.Row, 0, len(rows))
	for _, p := range rows {
		box := "[ ]"
		if m.sel.Contains(p.ID) {
			box = "[x]"
		}
		out = append(out, table.Row{
			box,
			p.Name,
			p.Description,
			string(p.Visibility),
			p.Status.Label(),
			dashboard.FormatTime(p.CreatedAt),
			dashboard.FormatTime(p.UpdatedAt),
		})
	}
	m.table.SetRows(out)
}

// current returns the project under the cursor.
func (m *dashboardModel) current() (dashboard.Project, bool) {
	rows := m.pageRows()
	i := m.table.Cursor()
	if i < 0 || i >= len(rows) {
		return dashboard.Project{}, false
	}
	return rows[i], true
}

func (m *dashboardModel) flash(msg string) tea.Cmd {
	m.flashMsg = msg
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flashMsg = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.New):
		m.newProject = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if p, ok := m.current(); ok {
			m.sel.Toggle(p.ID)
			m.renderRows(m.pageRows())
		}
		return m, nil
	case key.Matches(msg, m.keys.ToggleAll):
		m.sel.ToggleAll(m.projects)
		m.renderRows(m.pageRows())
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		if m.info.HasNext {
			m.gotoPage(m.info.Page + 1)
		}
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		if m.info.HasPrev {
			m.gotoPage(m.info.Page - 1)
		}
		return m, nil
	case key.Matches(msg, m.keys.Download):
		return m.runAction(dashboard.ActionDownload)
	case key.Matches(msg, m.keys.Archive):
		return m.runAction(dashboard.ActionArchive)
	case key.Matches(msg, m.keys.Delete):
		return m.runAction(dashboard.ActionDelete)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// runAction only records the request.
func (m dashboardModel) runAction(a dashboard.Action) (tea.Model, tea.Cmd) {
	p, ok := m.current()
	if !ok {
		return m, nil
	}
	m.log.Info("project action", zap.String("action", string(a)), zap.Int("id", p.ID), zap.String("name", p.Name))
	return m, m.flash(fmt.Sprintf("%s: %s", strings.ToUpper(string(a[:1]))+string(a[1:]), p.Name))
}

func (m dashboardModel) View() string {
	title := styleTitle().Render("Projects")
	newBtn := lipgloss.NewStyle().
		Foreground(colorAccentFg).
		Background(colorAccent).
		Padding(0, 1).
		Render("+ New Project (n)")
	gap := max(1, m.width-lipgloss.Width(title)-lipgloss.Width(newBtn))
	header := title + strings.Repeat(" ", gap) + newBtn

	var body string
	if len(m.projects) == 0 {
		body = styleMuted().Render("No projects yet. Press n to create one.")
	} else {
		body = m.table.View()
	}

	status := fmt.Sprintf("%d of %d project(s) selected", m.sel.Len(), len(m.projects))
	pager := fmt.Sprintf("Page %d of %d", m.info.Page, m.info.Pages)
	footer := status + strings.Repeat(" ", max(1, m.width-len(status)-len(pager))) + pager

	help := "space: select   a: all   ←/→: page   d/A/X: download/archive/delete   q: quit"
	if m.flashMsg != "" {
		help = m.flashMsg
	}

	return strings.Join([]string{
		header,
		"",
		body,
		"",
		styleMuted().Render(footer),
		styleMuted().Render(help),
	}, "\n")
}
