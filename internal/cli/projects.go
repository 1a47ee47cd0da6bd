package cli

import (
	"strconv"
	"strings"

	"scaffolder/internal/dashboard"
	"scaffolder/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Browse projects",
		Long: strings.TrimSpace(`
Show the projects table. space selects a row, a selects every project,
left/right change page and n starts the new-project wizard.
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := tuiLogger(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer func() { _ = log.Sync() }()

			newProject, err := tui.RunDashboard(dashboard.Sample(), log)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !newProject {
				return nil
			}
			log.Info("new project requested from dashboard")
			return runNew(cmd, app)
		},
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	cmd.AddCommand(newProjectsActionCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, info := dashboard.Paginate(dashboard.Sample(), page, pageSize)
			return writeOut(cmd, app, map[string]any{
				"data": rows,
				"meta": info,
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", dashboard.PageSize, "Rows per page")
	return cmd
}

func lookupProject(arg string) (dashboard.Project, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return dashboard.Project{}, errNotFound("project", arg)
	}
	p, ok := dashboard.Find(dashboard.Sample(), id)
	if !ok {
		return dashboard.Project{}, errNotFound("project", arg)
	}
	return p, nil
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookupProject(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}
}

// Actions are recorded, not carried out.
func newProjectsActionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "action <download|archive|delete> <project-id>",
		Short:     "Request a project action",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"download", "archive", "delete"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ok := dashboard.ParseAction(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("action", args[0]))
			}
			p, err := lookupProject(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			log, err := serverLogger(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer func() { _ = log.Sync() }()
			log.Info("project action", zap.String("action", string(a)), zap.Int("id", p.ID))

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"action": a, "project": p, "performed": false},
			})
		},
	}
}
