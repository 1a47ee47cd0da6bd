package tree

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML project description. A mapping value is a directory, a
// scalar value is a file with that content. Key order is child order.
//
//	README.md: "# My Project"
//	src:
//	  manage.py: print("Hello")
func Decode(r io.Reader) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(nil), nil
		}
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	d, err := decodeDir(root, "")
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

func LoadFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func decodeDir(n *yaml.Node, at string) (*Dir, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return NewBuilder().Build()
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %s: expected a mapping", n.Line, displayPath(at))
	}
	b := NewBuilder()
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		name := k.Value
		switch v.Kind {
		case yaml.ScalarNode:
			content := v.Value
			if v.Tag == "!!null" {
				content = ""
			}
			b.File(name, content)
		case yaml.MappingNode:
			sub, err := decodeDir(v, Join(at, name))
			if err != nil {
				return nil, err
			}
			b.Add(name, sub)
		default:
			return nil, fmt.Errorf("line %d: %s: expected file content or a mapping", v.Line, displayPath(Join(at, name)))
		}
	}
	d, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", n.Line, displayPath(at), err)
	}
	return d, nil
}

func displayPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
