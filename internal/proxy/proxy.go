// Package proxy forwards /api/* to the collaborator backend, the same rewrite
// rule the web front end used in development.
package proxy

import (
	"fmt"
	"net/url"
	"strings"

	"scaffolder/internal/reqlog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Prefix is the path prefix that is forwarded.
const Prefix = "/api"

type Config struct {
	// Target is the backend base URL, e.g. http://backend:8000.
	Target string
}

func parseTarget(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("proxy: bad target %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("proxy: target %q must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("proxy: target %q has no host", raw)
	}
	return u, nil
}

// New builds the proxy app. Requests outside Prefix get 404. An unreachable
// backend yields 502; the request is logged and not retried.
func New(cfg Config, log *zap.Logger) (*echo.Echo, error) {
	if log == nil {
		log = zap.NewNop()
	}
	target, err := parseTarget(cfg.Target)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(reqlog.Middleware(log))

	forward := middleware.ProxyWithConfig(middleware.ProxyConfig{
		Balancer: middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{{
			Name: "backend",
			URL:  target,
		}}),
	})
	// The proxy middleware never calls the route handler.
	e.Any(Prefix, echo.NotFoundHandler, forward)
	e.Any(Prefix+"/*", echo.NotFoundHandler, forward)

	log.Debug("proxy configured", zap.String("prefix", Prefix), zap.String("target", target.String()))
	return e, nil
}
