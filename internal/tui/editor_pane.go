package tui

import (
	"strings"

	"scaffolder/internal/tree"

	"github.com/charmbracelet/lipgloss"
)

// viewEditorTab renders the open file's tab: its name, then a dirty dot when
// there are unsaved changes, otherwise a close mark.
func (m appModel) viewEditorTab() string {
	active := m.sess.ActiveFile()
	marker := glyphClose()
	if m.sess.IsDirty(active) {
		marker = lipgloss.NewStyle().Foreground(colorDirty).Render(glyphDirty())
	}
	st := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if m.pane == paneEditor {
		st = st.Foreground(colorAccent)
	}
	return st.Render(tree.Base(active)) + marker
}

func (m appModel) viewEditorPane(width, height int) string {
	info := m.sess.Language().Name
	if m.preview {
		info += " (preview)"
	}
	header := m.viewEditorTab() + "  " + styleMuted().Render(info)
	rule := styleMuted().Render(strings.Repeat(glyphHRule(), width))

	var body string
	if m.preview {
		body = renderMarkdown(m.sess.Buffer(), width-2)
	} else {
		body = m.editor.View()
	}
	return normalizePane(strings.Join([]string{header, rule, body}, "\n"), width, height)
}
