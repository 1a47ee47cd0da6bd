package tree

import "iter"

type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "unknown"
	}
}

// Node is either a *File or a *Dir. Nodes are never mutated after construction.
type Node interface {
	Kind() Kind
}

type File struct {
	Content string
}

func (*File) Kind() Kind { return KindFile }

// Dir keeps its children in insertion order; names are unique.
type Dir struct {
	names    []string
	children map[string]Node
}

func (*Dir) Kind() Kind { return KindDir }

func (d *Dir) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

func (d *Dir) Names() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

func (d *Dir) Child(name string) (Node, bool) {
	if d == nil {
		return nil, false
	}
	n, ok := d.children[name]
	return n, ok
}

func (d *Dir) Entries() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		if d == nil {
			return
		}
		for _, name := range d.names {
			if !yield(name, d.children[name]) {
				return
			}
		}
	}
}

// replace returns a copy of d with name bound to n. The name must already exist.
func (d *Dir) replace(name string, n Node) *Dir {
	out := &Dir{
		names:    d.names,
		children: make(map[string]Node, len(d.children)),
	}
	for k, v := range d.children {
		out.children[k] = v
	}
	out.children[name] = n
	return out
}
