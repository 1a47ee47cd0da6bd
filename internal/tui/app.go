package tui

import (
	"slices"
	"strings"
	"time"

	"scaffolder/internal/session"
	"scaffolder/internal/tree"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// appModel is the scaffolding screen: explorer on the left, diagram or
// editor on the right, and the unsaved-changes dialog on top when needed.
type appModel struct {
	sess     *session.Session
	expanded *tree.ExpansionSet
	rows     []tree.Row
	cursor   int

	pane         pane
	editor       textarea.Model
	preview      bool
	confirmFocus confirmModalFocus

	// Session buffer the textarea was last loaded from.
	editorText string

	keys  keyMap
	log   *zap.Logger
	title string

	width  int
	height int

	minibuffer    string
	minibufferSeq int
}

func newAppModel(sess *session.Session, opts Options) appModel {
	m := appModel{
		sess:     sess,
		expanded: opts.Expanded,
		keys:     defaultKeyMap(),
		log:      opts.Logger,
		title:    strings.TrimSpace(opts.Title),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	if m.expanded == nil {
		m.expanded = tree.NewExpansionSet()
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.title == "" {
		m.title = "My Project"
	}

	m.editor = textarea.New()
	m.editor.Placeholder = "Empty file"
	m.editor.CharLimit = 0
	m.editor.MaxHeight = 0
	m.editor.ShowLineNumbers = true
	m.editor.Prompt = ""
	m.loadEditor(sess.Buffer())
	m.editor.Blur()

	m.refreshRows()
	m.selectRow(sess.ActiveFile())
	m.resize()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m *appModel) refreshRows() {
	m.rows = slices.Collect(m.sess.Tree().Render(m.expanded))
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectRow moves the cursor to path when it is visible.
func (m *appModel) selectRow(path string) {
	for i, r := range m.rows {
		if r.Path == path {
			m.cursor = i
			return
		}
	}
}

func (m *appModel) resize() {
	mainW := m.width - explorerWidth - 1
	if mainW < 10 {
		mainW = 10
	}
	// tabs + footer + editor tab header + rule
	h := m.bodyHeight() - 2
	if h < 3 {
		h = 3
	}
	m.editor.SetWidth(mainW)
	m.editor.SetHeight(h)
}

func (m appModel) bodyHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m *appModel) focusEditor() tea.Cmd {
	m.pane = paneEditor
	m.sess.SetView(session.ViewEditor)
	return m.editor.Focus()
}

func (m *appModel) focusExplorer() {
	m.pane = paneExplorer
	m.editor.Blur()
	m.selectRow(m.sess.ActiveFile())
}

func (m *appModel) loadEditor(text string) {
	m.editor.SetValue(text)
	m.editorText = text
}

// syncEditor reloads the textarea after the session changed the buffer.
func (m *appModel) syncEditor() {
	if m.editorText != m.sess.Buffer() {
		m.loadEditor(m.sess.Buffer())
	}
}

func (m *appModel) flash(msg string) tea.Cmd {
	m.minibuffer = msg
	m.minibufferSeq++
	seq := m.minibufferSeq
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

func (m appModel) View() string {
	header := m.viewTabs()
	footer := m.viewFooter()
	bodyH := m.bodyHeight()

	var body string
	if m.sess.Confirming() {
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, m.viewConfirmModal())
	} else {
		mainW := m.width - explorerWidth - 1
		explorer := m.viewExplorer(explorerWidth, bodyH)
		sep := normalizePane(strings.TrimRight(strings.Repeat("│\n", bodyH), "\n"), 1, bodyH)
		sep = styleMuted().Render(sep)

		var main string
		if m.sess.View() == session.ViewEditor {
			main = m.viewEditorPane(mainW, bodyH)
		} else {
			main = m.viewDiagram(mainW, bodyH)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, explorer, sep, main)
	}
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m appModel) viewTabs() string {
	tab := func(label string, active bool) string {
		st := lipgloss.NewStyle().Padding(0, 1)
		if active {
			st = st.Bold(true).Foreground(colorAccentFg).Background(colorAccent)
		} else {
			st = st.Foreground(colorChromeMuted)
		}
		return st.Render(label)
	}
	left := styleTitle().Render(m.title) + "  " +
		tab("Architecture Diagram", m.sess.View() == session.ViewDiagram) + " " +
		tab("Code Editor", m.sess.View() == session.ViewEditor)
	right := styleMuted().Render("[ctrl+g Export to GitHub] [ctrl+x Download ZIP]")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return normalizePane(left, m.width, 1)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m appModel) viewFooter() string {
	if m.minibuffer != "" {
		return normalizePane(m.minibuffer, m.width, 1)
	}
	var line string
	switch {
	case m.sess.Confirming():
		line = "tab: focus   enter: select   esc: cancel"
	case m.pane == paneExplorer:
		line = helpLine(m.keys.Up, m.keys.Down, m.keys.Open, m.keys.SwitchPane, m.keys.ShowDiagram, m.keys.ShowEditor, m.keys.Quit)
	default:
		line = helpLine(m.keys.Save, m.keys.Close, m.keys.Preview, m.keys.Leave, m.keys.Quit)
	}
	return normalizePane(styleMuted().Render(line), m.width, 1)
}
