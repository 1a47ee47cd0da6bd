// Package backend is the reference collaborator service that the proxy
// forwards /api/* to during local development.
package backend

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"scaffolder/internal/model"
	"scaffolder/internal/reqlog"
	"scaffolder/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// ItemStore is the persistence the handlers need.
type ItemStore interface {
	List(ctx context.Context) ([]model.Item, error)
	Get(ctx context.Context, id string) (model.Item, error)
	Create(ctx context.Context, in model.NewItem) (model.Item, error)
	Ping(ctx context.Context) error
}

type ServerConfig struct {
	CORSOrigins []string
}

type Handler struct {
	items ItemStore
	log   *zap.Logger
}

func NewHandler(items ItemStore, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{items: items, log: log}
}

// NewServer wires routes and middleware.
func NewServer(h *Handler, cfg ServerConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	if len(cfg.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.CORSOrigins,
			AllowCredentials: true,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	}
	e.Use(reqlog.Middleware(h.log))

	e.GET("/", h.HandleRoot)
	e.GET("/health", h.HandleHealth)
	e.GET("/api/items", h.HandleListItems)
	e.POST("/api/items", h.HandleCreateItem)
	e.GET("/api/items/:id", h.HandleGetItem)

	return e
}

func (h *Handler) HandleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the scaffolder backend!"})
}

func (h *Handler) HandleHealth(c echo.Context) error {
	if err := h.items.Ping(c.Request().Context()); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) HandleListItems(c echo.Context) error {
	items, err := h.items.List(c.Request().Context())
	if err != nil {
		h.log.Error("list items", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list items")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) HandleGetItem(c echo.Context) error {
	it, err := h.items.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		h.log.Error("get item", zap.String("id", c.Param("id")), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load item")
	}
	return c.JSON(http.StatusOK, it)
}

func (h *Handler) HandleCreateItem(c echo.Context) error {
	var in model.NewItem
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	if strings.TrimSpace(in.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	it, err := h.items.Create(c.Request().Context(), in)
	if err != nil {
		h.log.Error("create item", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create item")
	}
	return c.JSON(http.StatusCreated, it)
}
