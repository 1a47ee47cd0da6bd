package tui

import (
	"strings"
	"testing"

	"scaffolder/internal/session"
	"scaffolder/internal/tree"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T, expanded *tree.ExpansionSet) appModel {
	t.Helper()
	sess, err := session.New(tree.Sample(), "")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return newAppModel(sess, Options{Expanded: expanded})
}

func press(t *testing.T, m appModel, msg tea.KeyMsg) appModel {
	t.Helper()
	mAny, _ := m.Update(msg)
	m2, ok := mAny.(appModel)
	if !ok {
		t.Fatalf("expected appModel, got %T", mAny)
	}
	return m2
}

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	return press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestApp_StartsOnDiagramWithReadme(t *testing.T) {
	m := newTestApp(t, tree.SampleExpanded())
	if m.sess.View() != session.ViewDiagram {
		t.Fatalf("expected diagram view, got %v", m.sess.View())
	}
	if m.sess.ActiveFile() != "README.md" {
		t.Fatalf("expected README.md active, got %q", m.sess.ActiveFile())
	}
	if m.editor.Value() != "# My Project" {
		t.Fatalf("expected editor to hold README content, got %q", m.editor.Value())
	}
	if got := len(m.rows); got != 5 {
		t.Fatalf("expected 5 visible rows with src expanded, got %d", got)
	}
}

func TestApp_TypingMarksDirty(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.pane != paneEditor || m.sess.View() != session.ViewEditor {
		t.Fatalf("expected editor pane and view, got %v/%v", m.pane, m.sess.View())
	}

	m = typeText(t, m, "!")
	if !m.sess.IsDirty("README.md") {
		t.Fatalf("expected README.md dirty after typing")
	}
	if m.sess.Buffer() != "# My Project!" {
		t.Fatalf("unexpected buffer %q", m.sess.Buffer())
	}
	if !strings.Contains(m.viewEditorTab(), glyphDirty()) {
		t.Fatalf("expected dirty marker in tab %q", m.viewEditorTab())
	}
}

func TestApp_CtrlS_Saves(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "!")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.sess.IsDirty("README.md") {
		t.Fatalf("expected clean after save")
	}
	f, err := m.sess.Tree().File("README.md")
	if err != nil {
		t.Fatalf("file: %v", err)
	}
	if f.Content != "# My Project!" {
		t.Fatalf("expected saved content, got %q", f.Content)
	}
	if m.sess.View() != session.ViewEditor {
		t.Fatalf("save should not change the view")
	}
	if !strings.Contains(m.minibuffer, "Saved README.md") {
		t.Fatalf("expected save flash, got %q", m.minibuffer)
	}
}

func TestApp_AltS_Saves(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "!")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}, Alt: true})
	if m.sess.IsDirty("README.md") {
		t.Fatalf("expected alt+s to save")
	}
}

func TestApp_CtrlW_CleanClosesEditor(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.sess.Confirming() {
		t.Fatalf("clean close should not ask for confirmation")
	}
	if m.sess.View() != session.ViewDiagram || m.pane != paneExplorer {
		t.Fatalf("expected diagram and explorer focus, got %v/%v", m.sess.View(), m.pane)
	}
}

func TestApp_CtrlW_DirtyAsksThenCancel(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "!")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	if !m.sess.Confirming() {
		t.Fatalf("expected confirmation dialog")
	}
	if m.confirmFocus != confirmFocusCancel {
		t.Fatalf("expected cancel focused by default")
	}
	if !strings.Contains(m.View(), "Unsaved Changes") {
		t.Fatalf("expected modal in view")
	}

	// Keys other than the modal's own are swallowed.
	m = typeText(t, m, "zz")
	if m.sess.Buffer() != "# My Project!" {
		t.Fatalf("typing under the modal changed the buffer: %q", m.sess.Buffer())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.sess.Confirming() {
		t.Fatalf("expected dialog closed after cancel")
	}
	if m.sess.View() != session.ViewEditor || !m.sess.IsDirty("README.md") {
		t.Fatalf("cancel should keep editing with edits intact")
	}
}

func TestApp_CtrlW_DirtyDiscard(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "!")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.confirmFocus != confirmFocusConfirm {
		t.Fatalf("expected tab to move focus to the discard button")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.sess.Confirming() || m.sess.IsDirty("README.md") {
		t.Fatalf("expected dialog closed and file clean")
	}
	if m.sess.View() != session.ViewDiagram {
		t.Fatalf("expected diagram view, got %v", m.sess.View())
	}
	if m.editor.Value() != "# My Project" {
		t.Fatalf("expected editor reverted, got %q", m.editor.Value())
	}
}

func TestApp_EscClosesDialog(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "!")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.sess.Confirming() {
		t.Fatalf("expected esc to cancel the dialog")
	}
}

func TestApp_CtrlW_IgnoredOnDiagram(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.sess.Confirming() || m.sess.View() != session.ViewDiagram {
		t.Fatalf("close on the diagram view should do nothing")
	}
}

func TestApp_ExplorerOpensFile(t *testing.T) {
	m := newTestApp(t, nil)
	// README.md, src
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if row, _ := m.currentRow(); row.Path != "src" {
		t.Fatalf("expected cursor on src, got %q", row.Path)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.expanded.Contains("src") {
		t.Fatalf("expected src expanded")
	}
	// src/manage.py
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.sess.ActiveFile() != "src/manage.py" {
		t.Fatalf("expected manage.py active, got %q", m.sess.ActiveFile())
	}
	if m.pane != paneEditor || m.sess.View() != session.ViewEditor {
		t.Fatalf("opening a file should focus the editor")
	}
	if m.editor.Value() != `print("Hello")` {
		t.Fatalf("unexpected editor content %q", m.editor.Value())
	}
	if m.sess.Language().Name != "Python" {
		t.Fatalf("expected Python, got %q", m.sess.Language().Name)
	}
}

func TestApp_DirtyFlagSurvivesSwitchingFiles(t *testing.T) {
	m := newTestApp(t, tree.SampleExpanded())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "!")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	// README.md, src, src/manage.py
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.sess.ActiveFile() != "src/manage.py" {
		t.Fatalf("expected manage.py active, got %q", m.sess.ActiveFile())
	}
	if !m.sess.IsDirty("README.md") {
		t.Fatalf("README.md should stay dirty")
	}
	if !strings.Contains(m.viewExplorer(explorerWidth, 20), glyphDirty()) {
		t.Fatalf("expected dirty marker in explorer")
	}
}

func TestApp_CollapseJumpsToParent(t *testing.T) {
	m := newTestApp(t, tree.SampleExpanded())
	m.selectRow("src/manage.py")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if row, _ := m.currentRow(); row.Path != "src" {
		t.Fatalf("expected cursor on src, got %q", row.Path)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.expanded.Contains("src") {
		t.Fatalf("expected src collapsed")
	}
	if len(m.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(m.rows))
	}
}

func TestApp_PreviewOnlyForMarkdown(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if !m.preview {
		t.Fatalf("expected preview on for README.md")
	}
	m = typeText(t, m, "x")
	if m.sess.IsDirty("README.md") {
		t.Fatalf("typing in preview should not edit")
	}

	m = newTestApp(t, tree.SampleExpanded())
	m.selectRow("src/manage.py")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.preview {
		t.Fatalf("preview should stay off for python")
	}
}

func TestApp_ExportKeysFlash(t *testing.T) {
	m := newTestApp(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	if !strings.Contains(m.minibuffer, "GitHub") {
		t.Fatalf("expected GitHub flash, got %q", m.minibuffer)
	}
	seq := m.minibufferSeq

	mAny, _ := m.Update(flashDoneMsg{seq: seq - 1})
	m = mAny.(appModel)
	if m.minibuffer == "" {
		t.Fatalf("stale flashDoneMsg should not clear the minibuffer")
	}
	mAny, _ = m.Update(flashDoneMsg{seq: seq})
	m = mAny.(appModel)
	if m.minibuffer != "" {
		t.Fatalf("expected minibuffer cleared")
	}
}

func TestApp_ViewFitsWindow(t *testing.T) {
	m := newTestApp(t, tree.SampleExpanded())
	mAny, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 24})
	m = mAny.(appModel)

	out := m.View()
	if got := len(strings.Split(out, "\n")); got != 24 {
		t.Fatalf("expected 24 lines, got %d", got)
	}
	if !strings.Contains(out, "Architecture Diagram") || !strings.Contains(out, "Project Explorer") {
		t.Fatalf("missing chrome in view:\n%s", out)
	}
}
