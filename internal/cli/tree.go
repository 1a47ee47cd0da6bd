package cli

import (
	"strings"

	"scaffolder/internal/lang"
	"scaffolder/internal/tree"

	"github.com/spf13/cobra"
)

func newTreeCmd(app *App) *cobra.Command {
	var expand []string
	var all bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the explorer rows for a project",
		Example: strings.TrimSpace(`
# Sample project as the explorer shows it on start
scaffolder tree

# Everything, from a YAML project file
scaffolder --tree project.yaml tree --all
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, expanded, err := loadTree(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if all {
				expanded = tree.ExpandAll(t)
			} else if len(expand) > 0 {
				expanded = tree.NewExpansionSet()
			}
			for _, p := range expand {
				p = strings.Trim(strings.TrimSpace(p), "/")
				n, ok := t.Locate(p)
				if !ok {
					return writeErr(cmd, errNotFound("path", p))
				}
				// Expanding a nested path opens its ancestors too.
				for i := 0; i < len(p); i++ {
					if p[i] == '/' {
						expanded.Expand(p[:i])
					}
				}
				if n.Kind() == tree.KindDir {
					expanded.Expand(p)
				}
			}

			rows := []map[string]any{}
			for r := range t.Render(expanded) {
				row := map[string]any{
					"path":  r.Path,
					"name":  r.Name,
					"kind":  r.Node.Kind().String(),
					"depth": r.Depth,
				}
				if r.IsDir() {
					row["expanded"] = r.Expanded
				} else {
					row["language"] = lang.Detect(r.Name).Name
				}
				rows = append(rows, row)
			}
			return writeOut(cmd, app, map[string]any{
				"data": rows,
				"meta": map[string]any{
					"count":    len(rows),
					"expanded": expanded.Paths(),
				},
			})
		},
	}

	cmd.Flags().StringArrayVar(&expand, "expand", nil, "Directory to expand (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "Expand every directory")
	return cmd
}
