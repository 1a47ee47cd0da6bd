package tui

import (
	"scaffolder/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Save  key.Binding
	Close key.Binding
	Quit  key.Binding

	SwitchPane key.Binding
	Leave      key.Binding

	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Expand   key.Binding
	Collapse key.Binding

	ShowDiagram key.Binding
	ShowEditor  key.Binding
	Preview     key.Binding

	ExportGitHub key.Binding
	ExportZIP    key.Binding
}

// alt+s / alt+w stand in for the meta-key accelerators terminals can deliver.
func defaultKeyMap() keyMap {
	return keyMap{
		Save:  key.NewBinding(key.WithKeys("ctrl+s", "alt+s"), key.WithHelp("ctrl+s", "save")),
		Close: key.NewBinding(key.WithKeys("ctrl+w", "alt+w"), key.WithHelp("ctrl+w", "close")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Leave:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "explorer")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/toggle")),
		Expand:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
		Collapse: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),

		ShowDiagram: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "diagram")),
		ShowEditor:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "editor")),
		Preview:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "preview")),

		ExportGitHub: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "export to GitHub")),
		ExportZIP:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "download ZIP")),
	}
}

// shortcut maps the save/close accelerators to session shortcuts.
func (k keyMap) shortcut(msg tea.KeyMsg) session.Shortcut {
	switch {
	case key.Matches(msg, k.Save):
		return session.ShortcutSave
	case key.Matches(msg, k.Close):
		return session.ShortcutClose
	default:
		return session.ShortcutNone
	}
}

func helpLine(bs ...key.Binding) string {
	out := ""
	for _, b := range bs {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		if out != "" {
			out += "   "
		}
		out += h.Key + ": " + h.Desc
	}
	return out
}
