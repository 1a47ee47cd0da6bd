// Package serve runs an echo app on a listener until its context ends.
package serve

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run serves e on ln and shuts down gracefully once ctx is done. It returns
// nil after a clean shutdown.
func Run(ctx context.Context, e *echo.Echo, ln net.Listener, log *zap.Logger) error {
	e.Listener = ln
	e.Server.ReadHeaderTimeout = 10 * time.Second

	addr := ln.Addr().String()
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr))
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.String("addr", addr))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
