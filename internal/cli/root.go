package cli

import (
	"fmt"
	"os"
	"strings"

	"scaffolder/internal/config"
	"scaffolder/internal/format"
	"scaffolder/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	ConfigPath string
	TreePath   string
	LogFile    string
	Verbose    bool
	PrettyJSON bool
	Format     string

	cfg *config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "scaffolder",
		Short:        "Project scaffolder: explorer, editor and /api proxy",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the scaffolding screen on the sample project
  scaffolder

  # Start a new project with the setup wizard
  scaffolder new

  # Forward /api/* to a backend
  scaffolder proxy --backend http://localhost:8000
`),
		// No subcommand => interactive TUI.
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return cmd.Help()
			}
			return runOpen(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var (
			cfg *config.Config
			err error
		)
		if app.ConfigPath != "" {
			cfg, err = config.LoadFile(app.ConfigPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("SCAFFOLDER_CONFIG", ""), "Config file (default: ~/.scaffolder/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.TreePath, "tree", "", "YAML project file to open instead of the sample project")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("SCAFFOLDER_LOG_FILE", ""), "Write TUI logs to this file")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("SCAFFOLDER_FORMAT", "json"), "Output format (json|edn|yaml)")

	cmd.AddCommand(newOpenCmd(app))
	cmd.AddCommand(newNewCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newTreeCmd(app))
	cmd.AddCommand(newProxyCmd(app))
	cmd.AddCommand(newBackendCmd(app))
	cmd.AddCommand(newItemsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// serverLogger is the logger for long-running commands: JSON on stderr.
func serverLogger(app *App) (*zap.Logger, error) {
	return logging.New(logging.Options{Verbose: app.Verbose, Path: app.LogFile})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
