package tree

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNotAFile      = errors.New("not a file")
	ErrDuplicateName = errors.New("duplicate name")
	ErrInvalidName   = errors.New("invalid name")
)

// Tree is an immutable project hierarchy. Paths are slash separated and
// relative to the root, e.g. "src/app/project.tsx".
type Tree struct {
	root *Dir
}

func New(root *Dir) *Tree {
	if root == nil {
		root = &Dir{children: map[string]Node{}}
	}
	return &Tree{root: root}
}

func (t *Tree) Root() *Dir {
	if t == nil {
		return nil
	}
	return t.root
}

// Join appends name to the directory path dir.
func Join(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// Base returns the last element of path.
func Base(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

func splitPath(path string) ([]string, bool) {
	if path == "" {
		return nil, false
	}
	parts := strings.Split(path, "/")
	for _, p := range parts {
		if !validName(p) {
			return nil, false
		}
	}
	return parts, true
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, "/")
}

// Locate returns the node at path. The root itself is not addressable.
func (t *Tree) Locate(path string) (Node, bool) {
	parts, ok := splitPath(path)
	if !ok || t == nil {
		return nil, false
	}
	var cur Node = t.root
	for _, p := range parts {
		d, isDir := cur.(*Dir)
		if !isDir {
			return nil, false
		}
		next, ok := d.Child(p)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// File returns the file at path.
func (t *Tree) File(path string) (*File, error) {
	n, ok := t.Locate(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	f, ok := n.(*File)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotAFile)
	}
	return f, nil
}

// WithFile returns a tree where the file at path holds content. Only the
// directories on the path are copied; t is left unchanged.
func (t *Tree) WithFile(path, content string) (*Tree, error) {
	if _, err := t.File(path); err != nil {
		return nil, err
	}
	parts, _ := splitPath(path)
	return &Tree{root: rebuild(t.root, parts, &File{Content: content})}, nil
}

func rebuild(d *Dir, parts []string, leaf Node) *Dir {
	name := parts[0]
	if len(parts) == 1 {
		return d.replace(name, leaf)
	}
	child, _ := d.Child(name)
	return d.replace(name, rebuild(child.(*Dir), parts[1:], leaf))
}

// Files yields every file in depth-first order, regardless of expansion.
func (t *Tree) Files() iter.Seq2[string, *File] {
	return func(yield func(string, *File) bool) {
		for row := range t.walk(func(string) bool { return true }) {
			f, ok := row.Node.(*File)
			if !ok {
				continue
			}
			if !yield(row.Path, f) {
				return
			}
		}
	}
}

// FirstFile returns the first file in depth-first order.
func (t *Tree) FirstFile() (string, bool) {
	for p := range t.Files() {
		return p, true
	}
	return "", false
}
