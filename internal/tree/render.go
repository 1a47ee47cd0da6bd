package tree

import "iter"

// Row is one line of the explorer: a node with its path, depth and, for
// directories, whether it is expanded.
type Row struct {
	Path     string
	Name     string
	Node     Node
	Depth    int
	Expanded bool
}

func (r Row) IsDir() bool {
	_, ok := r.Node.(*Dir)
	return ok
}

// Render yields rows depth-first, parents before children. A directory's
// children are only visited while the directory is in expanded. The sequence
// is finite and may be ranged over any number of times.
func (t *Tree) Render(expanded *ExpansionSet) iter.Seq[Row] {
	return t.walk(expanded.Contains)
}

// walk uses an explicit stack so deep trees don't grow the goroutine stack.
func (t *Tree) walk(open func(path string) bool) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		if t == nil || t.root == nil {
			return
		}
		type frame struct {
			dir    *Dir
			prefix string
			depth  int
			next   int
		}
		stack := []frame{{dir: t.root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.dir.names) {
				stack = stack[:len(stack)-1]
				continue
			}
			name := top.dir.names[top.next]
			top.next++

			node := top.dir.children[name]
			row := Row{
				Path:  Join(top.prefix, name),
				Name:  name,
				Node:  node,
				Depth: top.depth,
			}
			d, isDir := node.(*Dir)
			if isDir {
				row.Expanded = open(row.Path)
			}
			if !yield(row) {
				return
			}
			if isDir && row.Expanded {
				stack = append(stack, frame{dir: d, prefix: row.Path, depth: row.Depth + 1})
			}
		}
	}
}
