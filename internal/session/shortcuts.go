package session

import "go.uber.org/zap"

type Shortcut int

const (
	ShortcutNone Shortcut = iota
	ShortcutSave
	ShortcutClose
)

func (sc Shortcut) String() string {
	switch sc {
	case ShortcutSave:
		return "save"
	case ShortcutClose:
		return "close"
	default:
		return "none"
	}
}

// HandleShortcut runs the accelerator and reports whether it was consumed.
// Save and close are always consumed so the host suppresses its own binding
// for the same keys; close only acts while the editor view is showing.
func (s *Session) HandleShortcut(sc Shortcut) bool {
	switch sc {
	case ShortcutSave:
		if err := s.Save(); err != nil {
			s.log.Warn("save failed", zap.Error(err))
		}
		return true
	case ShortcutClose:
		if s.view == ViewEditor {
			s.RequestClose()
		}
		return true
	default:
		return false
	}
}
