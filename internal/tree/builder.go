package tree

import "fmt"

// Builder assembles a directory in insertion order. The first error sticks
// and is reported by Build.
type Builder struct {
	dir *Dir
	err error
}

func NewBuilder() *Builder {
	return &Builder{dir: &Dir{children: map[string]Node{}}}
}

func (b *Builder) Add(name string, n Node) *Builder {
	if b.err != nil {
		return b
	}
	if !validName(name) {
		b.err = fmt.Errorf("%q: %w", name, ErrInvalidName)
		return b
	}
	if _, exists := b.dir.children[name]; exists {
		b.err = fmt.Errorf("%q: %w", name, ErrDuplicateName)
		return b
	}
	b.dir.names = append(b.dir.names, name)
	b.dir.children[name] = n
	return b
}

func (b *Builder) File(name, content string) *Builder {
	return b.Add(name, &File{Content: content})
}

// Dir adds a subdirectory populated by fill.
func (b *Builder) Dir(name string, fill func(*Builder)) *Builder {
	if b.err != nil {
		return b
	}
	sub := NewBuilder()
	if fill != nil {
		fill(sub)
	}
	d, err := sub.Build()
	if err != nil {
		b.err = fmt.Errorf("%s: %w", name, err)
		return b
	}
	return b.Add(name, d)
}

func (b *Builder) Build() (*Dir, error) {
	if b.err != nil {
		return nil, b.err
	}
	// Copy so later Adds can't reach a directory that is already in use.
	out := &Dir{
		names:    append([]string(nil), b.dir.names...),
		children: make(map[string]Node, len(b.dir.children)),
	}
	for k, v := range b.dir.children {
		out.children[k] = v
	}
	return out, nil
}

// Tree builds and wraps the root directory.
func (b *Builder) Tree() (*Tree, error) {
	d, err := b.Build()
	if err != nil {
		return nil, err
	}
	return New(d), nil
}
