package tui

import (
	"scaffolder/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case flashDoneMsg:
		if msg.seq == m.minibufferSeq {
			m.minibuffer = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Cursor blink and other textarea internals.
	if m.pane == paneEditor {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.sess.Confirming() {
		return m.updateConfirmModal(msg)
	}

	// Save/close are handled before any pane sees the key: ctrl+w would
	// otherwise delete a word in the textarea.
	if sc := m.keys.shortcut(msg); sc != session.ShortcutNone {
		return m.applyShortcut(sc)
	}

	switch {
	case key.Matches(msg, m.keys.ExportGitHub):
		m.log.Info("exporting to GitHub", zap.String("project", m.title))
		return m, m.flash("Export to GitHub is not available yet")
	case key.Matches(msg, m.keys.ExportZIP):
		m.log.Info("downloading as ZIP", zap.String("project", m.title))
		return m, m.flash("Download as ZIP is not available yet")
	case key.Matches(msg, m.keys.SwitchPane):
		if m.pane == paneExplorer {
			m.syncEditor()
			return m, m.focusEditor()
		}
		m.focusExplorer()
		return m, nil
	}

	if m.pane == paneExplorer {
		return m.updateExplorer(msg)
	}
	return m.updateEditor(msg)
}

func (m appModel) applyShortcut(sc session.Shortcut) (tea.Model, tea.Cmd) {
	wasEditor := m.sess.View() == session.ViewEditor
	m.sess.HandleShortcut(sc)

	switch sc {
	case session.ShortcutSave:
		if m.sess.IsDirty(m.sess.ActiveFile()) {
			return m, m.flash("Save failed")
		}
		return m, m.flash("Saved " + m.sess.ActiveFile())
	case session.ShortcutClose:
		if m.sess.Confirming() {
			m.confirmFocus = confirmFocusCancel
			return m, nil
		}
		if wasEditor {
			m.preview = false
			m.focusExplorer()
		}
	}
	return m, nil
}

func (m appModel) updateExplorer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "q":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if row.IsDir() {
			m.expanded.Toggle(row.Path)
			m.refreshRows()
			return m, nil
		}
		return m.openFile(row.Path)
	case key.Matches(msg, m.keys.Expand):
		if row, ok := m.currentRow(); ok && row.IsDir() && !row.Expanded {
			m.expanded.Toggle(row.Path)
			m.refreshRows()
		}
	case key.Matches(msg, m.keys.Collapse):
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if row.IsDir() && row.Expanded {
			m.expanded.Toggle(row.Path)
			m.refreshRows()
			return m, nil
		}
		m.selectParent(row.Path)
	case key.Matches(msg, m.keys.ShowDiagram):
		m.sess.SetView(session.ViewDiagram)
	case key.Matches(msg, m.keys.ShowEditor):
		m.syncEditor()
		m.sess.SetView(session.ViewEditor)
	}
	return m, nil
}

func (m appModel) openFile(path string) (tea.Model, tea.Cmd) {
	text, err := m.sess.SelectFile(path)
	if err != nil {
		m.log.Warn("open file", zap.String("path", path), zap.Error(err))
		return m, m.flash(err.Error())
	}
	m.loadEditor(text)
	m.preview = false
	return m, m.focusEditor()
}

func (m appModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sess.View() != session.ViewEditor {
		m.focusExplorer()
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Leave):
		m.focusExplorer()
		return m, nil
	case key.Matches(msg, m.keys.Preview):
		if m.sess.Language().IsMarkdown() {
			m.preview = !m.preview
		}
		return m, nil
	}
	if m.preview {
		return m, nil
	}

	// Only a change to the textarea's own value is an edit; cursor keys
	// leave it alone.
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		text := restoreLines(m.sess.Buffer(), after)
		if err := m.sess.Edit(text); err != nil {
			m.log.Debug("edit ignored", zap.Error(err))
		} else {
			m.editorText = text
		}
	}
	return m, cmd
}

func (m appModel) updateConfirmModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			m.sess.ConfirmDiscard()
			m.syncEditor()
			m.preview = false
			m.focusExplorer()
			return m, m.flash("Discarded changes")
		}
		m.sess.CancelClose()
	case "esc":
		m.sess.CancelClose()
	}
	return m, nil
}
