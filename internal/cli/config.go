package cli

import (
	"errors"
	"os"

	"scaffolder/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return writeErr(cmd, errors.New("config init: "+path+" exists (use --force)"))
			}
			if err := config.Save(path, config.Default()); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"path": path},
			})
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config (file, env and defaults)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			c := app.cfg
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"proxy": map[string]any{
						"addr":   c.Proxy.Addr,
						"target": c.Proxy.Target,
					},
					"backend": map[string]any{
						"addr":        c.Backend.Addr,
						"db":          c.Backend.DB,
						"corsOrigins": c.Backend.CORSOrigins,
					},
					"tui": map[string]any{
						"tree":    c.TUI.Tree,
						"logFile": c.TUI.LogFile,
					},
				},
				"meta": map[string]any{"path": path},
			})
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func configPath(app *App) (string, error) {
	if app.ConfigPath != "" {
		return app.ConfigPath, nil
	}
	return config.Path()
}
