package tree

import "sort"

// ExpansionSet holds the directory paths currently shown open. The zero value
// is an empty set ready to use.
type ExpansionSet struct {
	paths map[string]struct{}
}

func NewExpansionSet(paths ...string) *ExpansionSet {
	s := &ExpansionSet{}
	for _, p := range paths {
		s.Expand(p)
	}
	return s
}

// Toggle flips membership of path and reports whether it is now expanded.
func (s *ExpansionSet) Toggle(path string) bool {
	if s.Contains(path) {
		s.Collapse(path)
		return false
	}
	s.Expand(path)
	return true
}

func (s *ExpansionSet) Contains(path string) bool {
	if s == nil || s.paths == nil {
		return false
	}
	_, ok := s.paths[path]
	return ok
}

func (s *ExpansionSet) Expand(path string) {
	if s.paths == nil {
		s.paths = map[string]struct{}{}
	}
	s.paths[path] = struct{}{}
}

func (s *ExpansionSet) Collapse(path string) {
	delete(s.paths, path)
}

func (s *ExpansionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.paths)
}

// Paths returns the members in lexical order.
func (s *ExpansionSet) Paths() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// ExpandAll returns a set containing every directory of t.
func ExpandAll(t *Tree) *ExpansionSet {
	s := &ExpansionSet{}
	for row := range t.walk(func(string) bool { return true }) {
		if row.IsDir() {
			s.Expand(row.Path)
		}
	}
	return s
}
