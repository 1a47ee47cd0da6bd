package cli

import (
	"errors"
	"net/http"
	"strings"

	"scaffolder/internal/backend"
	"scaffolder/internal/model"

	"github.com/spf13/cobra"
)

func newItemsCmd(app *App) *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Talk to the items API (through the proxy by default)",
	}
	cmd.PersistentFlags().StringVar(&baseURL, "url", envOr("SCAFFOLDER_API_URL", ""), "API base URL (default: the local proxy)")

	client := func() *backend.Client {
		u := strings.TrimSpace(baseURL)
		if u == "" {
			u = localURL(app.cfg.Proxy.Addr)
		}
		return backend.NewClient(u)
	}

	cmd.AddCommand(newItemsListCmd(app, client))
	cmd.AddCommand(newItemsShowCmd(app, client))
	cmd.AddCommand(newItemsAddCmd(app, client))
	return cmd
}

func newItemsListCmd(app *App, client func() *backend.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := client().ListItems(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if items == nil {
				items = []model.Item{}
			}
			return writeOut(cmd, app, map[string]any{
				"data": items,
				"meta": map[string]any{"count": len(items)},
			})
		},
	}
}

func newItemsShowCmd(app *App, client func() *backend.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			it, err := client().GetItem(cmd.Context(), id)
			var se *backend.StatusError
			if errors.As(err, &se) && se.Code == http.StatusNotFound {
				return writeErr(cmd, errNotFound("item", id))
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": it})
		},
	}
}

func newItemsAddCmd(app *App, client func() *backend.Client) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an item",
		Example: strings.TrimSpace(`
scaffolder items add --name "Widget" --description "first one"
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return writeErr(cmd, errors.New("items add: missing --name"))
			}
			it, err := client().CreateItem(cmd.Context(), model.NewItem{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": it})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Item description")
	return cmd
}

// localURL turns a listen address like ":3000" into a URL a client can dial.
func localURL(addr string) string {
	addr = strings.TrimSpace(addr)
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
