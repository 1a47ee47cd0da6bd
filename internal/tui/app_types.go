package tui

type pane int

const (
	paneExplorer pane = iota
	paneEditor
)

func (p pane) String() string {
	switch p {
	case paneExplorer:
		return "explorer"
	case paneEditor:
		return "editor"
	default:
		return "unknown"
	}
}

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

type flashDoneMsg struct{ seq int }

const (
	explorerWidth = 32
	// Sizes used until the first WindowSizeMsg arrives.
	defaultWidth  = 100
	defaultHeight = 30
)
