// Package session tracks the editor side of the scaffolding screen: which
// file is open, its unsaved buffer, per-file dirty flags and whether the
// close-confirmation dialog is showing.
//
// A Session is owned by a single event loop and is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"sort"

	"scaffolder/internal/lang"
	"scaffolder/internal/tree"

	"go.uber.org/zap"
)

type View int

const (
	ViewDiagram View = iota
	ViewEditor
)

func (v View) String() string {
	switch v {
	case ViewDiagram:
		return "diagram"
	case ViewEditor:
		return "editor"
	default:
		return "unknown"
	}
}

type State int

const (
	StateClean State = iota
	StateDirty
	StateConfirmingClose
)

func (s State) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateDirty:
		return "dirty"
	case StateConfirmingClose:
		return "confirming-close"
	default:
		return "unknown"
	}
}

// CloseOutcome tells the caller what RequestClose did.
type CloseOutcome int

const (
	// Closed means the editor was clean and the diagram view is now showing.
	Closed CloseOutcome = iota
	// NeedsConfirmation means the dialog is open and nothing was discarded.
	NeedsConfirmation
)

var (
	ErrDialogOpen = errors.New("close confirmation pending")
	ErrNoFiles    = errors.New("project has no files")
)

// DefaultFile is preferred as the initially active file when present.
const DefaultFile = "README.md"

type Session struct {
	tree *tree.Tree

	active string
	buffer string
	// Unsaved text per file; present only while the file is dirty.
	buffers map[string]string
	dirty   map[string]bool

	view       View
	confirming bool

	log *zap.Logger
}

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func WithView(v View) Option {
	return func(s *Session) { s.view = v }
}

// New opens a session on t with active selected. An empty active picks
// DefaultFile, or the first file depth-first when the project has no README.
func New(t *tree.Tree, active string, opts ...Option) (*Session, error) {
	s := &Session{
		tree:    t,
		buffers: map[string]string{},
		dirty:   map[string]bool{},
		view:    ViewDiagram,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}

	if active == "" {
		if _, err := t.File(DefaultFile); err == nil {
			active = DefaultFile
		} else if p, ok := t.FirstFile(); ok {
			active = p
		} else {
			return nil, ErrNoFiles
		}
	}
	f, err := t.File(active)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	s.active = active
	s.buffer = f.Content
	return s, nil
}

func (s *Session) Tree() *tree.Tree   { return s.tree }
func (s *Session) ActiveFile() string { return s.active }
func (s *Session) Buffer() string     { return s.buffer }
func (s *Session) View() View         { return s.view }

// Confirming reports whether the unsaved-changes dialog is open.
func (s *Session) Confirming() bool { return s.confirming }

func (s *Session) State() State {
	if s.confirming {
		return StateConfirmingClose
	}
	if s.dirty[s.active] {
		return StateDirty
	}
	return StateClean
}

// IsDirty reports the flag for any path; unknown paths are clean.
func (s *Session) IsDirty(path string) bool { return s.dirty[path] }

// DirtyFiles lists every file with unsaved edits, sorted.
func (s *Session) DirtyFiles() []string {
	var out []string
	for p, d := range s.dirty {
		if d {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func (s *Session) Language() lang.Info { return lang.Detect(s.active) }

// SetView switches tabs directly, like clicking the tab header. It does not
// consult dirty flags.
func (s *Session) SetView(v View) {
	if s.confirming {
		return
	}
	s.view = v
}

// Edit replaces the active buffer and marks the file dirty.
func (s *Session) Edit(text string) error {
	if s.confirming {
		return ErrDialogOpen
	}
	s.buffer = text
	s.buffers[s.active] = text
	s.dirty[s.active] = true
	return nil
}

// SelectFile makes path active and returns the text now in the buffer: the
// unsaved buffer when path is dirty, otherwise its stored content. The
// previous file keeps its dirty flag and buffer.
func (s *Session) SelectFile(path string) (string, error) {
	if s.confirming {
		return "", ErrDialogOpen
	}
	f, err := s.tree.File(path)
	if err != nil {
		return "", err
	}
	s.active = path
	if buf, ok := s.buffers[path]; ok && s.dirty[path] {
		s.buffer = buf
	} else {
		s.buffer = f.Content
	}
	s.view = ViewEditor
	s.log.Debug("file selected", zap.String("path", path), zap.Bool("dirty", s.dirty[path]))
	return s.buffer, nil
}

// RequestClose closes the editor when the active file is clean. A dirty file
// opens the confirmation dialog instead and nothing changes until
// ConfirmDiscard or CancelClose.
func (s *Session) RequestClose() CloseOutcome {
	if s.confirming || s.dirty[s.active] {
		s.confirming = true
		return NeedsConfirmation
	}
	s.view = ViewDiagram
	return Closed
}

// ConfirmDiscard drops the active file's unsaved edits and returns to the diagram.
func (s *Session) ConfirmDiscard() {
	if s.dirty[s.active] {
		s.log.Info("discarding unsaved changes", zap.String("path", s.active))
	}
	delete(s.dirty, s.active)
	delete(s.buffers, s.active)
	if f, err := s.tree.File(s.active); err == nil {
		s.buffer = f.Content
	}
	s.confirming = false
	s.view = ViewDiagram
}

// CancelClose dismisses the dialog and keeps editing.
func (s *Session) CancelClose() {
	s.confirming = false
}

// Save stores the active buffer into the tree and clears the dirty flag. The
// view does not change. It is rejected while the close dialog is open.
func (s *Session) Save() error {
	if s.confirming {
		return ErrDialogOpen
	}
	next, err := s.tree.WithFile(s.active, s.buffer)
	if err != nil {
		return fmt.Errorf("save %s: %w", s.active, err)
	}
	s.tree = next
	delete(s.dirty, s.active)
	delete(s.buffers, s.active)
	s.log.Info("saving file", zap.String("path", s.active), zap.Int("bytes", len(s.buffer)))
	return nil
}
