package tui

import (
	"strings"

	"scaffolder/internal/tree"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) currentRow() (tree.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return tree.Row{}, false
	}
	return m.rows[m.cursor], true
}

// selectParent moves the cursor to the directory containing path.
func (m *appModel) selectParent(path string) {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return
	}
	m.selectRow(path[:i])
}

func (m appModel) viewExplorer(width, height int) string {
	lines := []string{styleTitle().Render("Project Explorer"), ""}

	listH := height - len(lines)
	start := 0
	if listH > 0 && m.cursor >= listH {
		start = m.cursor - listH + 1
	}

	folder := lipgloss.NewStyle().Foreground(colorFolder)
	dirty := lipgloss.NewStyle().Foreground(colorDirty)
	for i := start; i < len(m.rows); i++ {
		r := m.rows[i]
		indent := strings.Repeat("  ", r.Depth)

		var label string
		if r.IsDir() {
			tw := glyphTwistyCollapsed()
			if r.Expanded {
				tw = glyphTwistyExpanded()
			}
			label = tw + " " + folder.Render(r.Name)
		} else {
			label = "  " + r.Name
			if m.sess.IsDirty(r.Path) {
				label += " " + dirty.Render(glyphDirty())
			}
		}

		st := lipgloss.NewStyle()
		if r.Path == m.sess.ActiveFile() {
			st = st.Bold(true)
		}
		if i == m.cursor && m.pane == paneExplorer {
			st = st.Foreground(colorSelectedFg).Background(colorSelectedBg)
		}
		lines = append(lines, st.Render(indent+label))
	}
	return normalizePane(strings.Join(lines, "\n"), width, height)
}
