package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"scaffolder/internal/backend"
	"scaffolder/internal/proxy"
	"scaffolder/internal/serve"
	"scaffolder/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProxyCmd(app *App) *cobra.Command {
	var addr, target string

	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Forward /api/* to the backend",
		Long: strings.TrimSpace(`
Serve a local HTTP endpoint that forwards every request under /api to the
backend, keeping path and query. Anything else is 404; an unreachable backend
is 502.
`),
		Example: strings.TrimSpace(`
scaffolder proxy
scaffolder proxy --addr 127.0.0.1:3000 --backend http://localhost:8000
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.cfg.Proxy.Addr
			}
			if target == "" {
				target = app.cfg.Proxy.Target
			}
			log, err := serverLogger(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer func() { _ = log.Sync() }()

			e, err := proxy.New(proxy.Config{Target: target}, log)
			if err != nil {
				return writeErr(cmd, err)
			}
			return listenAndServe(cmd, app, e, addr, log, map[string]any{
				"prefix": proxy.Prefix,
				"target": target,
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :3000)")
	cmd.Flags().StringVar(&target, "backend", "", "Backend base URL (default from config, http://backend:8000)")
	return cmd
}

func newBackendCmd(app *App) *cobra.Command {
	var addr, dbPath string

	cmd := &cobra.Command{
		Use:   "backend",
		Short: "Run the reference items backend",
		Long: strings.TrimSpace(`
Run the collaborator backend the proxy forwards to: GET /, GET /health and
/api/items backed by SQLite.
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.cfg.Backend.Addr
			}
			if dbPath == "" {
				dbPath = app.cfg.Backend.DB
			}
			log, err := serverLogger(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer func() { _ = log.Sync() }()

			items, err := store.OpenItems(cmd.Context(), dbPath)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer func() {
				if err := items.Close(); err != nil {
					log.Warn("close items store", zap.Error(err))
				}
			}()

			e := backend.NewServer(backend.NewHandler(items, log), backend.ServerConfig{
				CORSOrigins: app.cfg.Backend.CORSOrigins,
			})
			return listenAndServe(cmd, app, e, addr, log, map[string]any{
				"db": dbPath,
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8000)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file (default: ~/.scaffolder/items.sqlite)")
	return cmd
}

// listenAndServe binds addr, reports the bound address on stdout and serves
// until SIGINT/SIGTERM.
func listenAndServe(cmd *cobra.Command, app *App, e *echo.Echo, addr string, log *zap.Logger, extra map[string]any) error {
	ln, err := net.Listen("tcp", strings.TrimSpace(addr))
	if err != nil {
		return writeErr(cmd, err)
	}

	actual := ln.Addr().String()
	data := map[string]any{
		"addr": actual,
		"url":  "http://" + actual + "/",
	}
	for k, v := range extra {
		data[k] = v
	}
	_ = writeOut(cmd, app, map[string]any{"data": data})
	fmt.Fprintf(cmd.ErrOrStderr(), "%s running at http://%s/\n", cmd.Name(), actual)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve.Run(ctx, e, ln, log); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}
