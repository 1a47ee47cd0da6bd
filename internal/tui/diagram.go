package tui

import (
	"fmt"
	"strings"

	"scaffolder/internal/tree"

	"github.com/charmbracelet/lipgloss"
)

// viewDiagram draws the top-level components as boxes. It is a static
// overview, not an editable canvas.
func (m appModel) viewDiagram(width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	var parts []string
	for name, n := range m.sess.Tree().Root().Entries() {
		label := name
		if d, ok := n.(*tree.Dir); ok {
			label = fmt.Sprintf("%s/\n%s", name, styleMuted().Render(fmt.Sprintf("%d entries", d.Len())))
		}
		if len(parts) > 0 {
			parts = append(parts, lipgloss.NewStyle().Padding(1, 1).Render(glyphArrow()))
		}
		parts = append(parts, box.Render(label))
	}

	lines := []string{
		styleTitle().Render("Architecture Diagram"),
		"",
	}
	if len(parts) == 0 {
		lines = append(lines, styleMuted().Render("Empty project"))
	} else {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	lines = append(lines, "", styleMuted().Render("enter a file in the explorer to edit it"))
	return normalizePane(strings.Join(lines, "\n"), width, height)
}
