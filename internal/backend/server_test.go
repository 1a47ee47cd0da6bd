package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"scaffolder/internal/model"
	"scaffolder/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	items, err := store.OpenItems(context.Background(), filepath.Join(t.TempDir(), "items.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = items.Close() })
	return NewServer(NewHandler(items, nil), ServerConfig{CORSOrigins: []string{"http://localhost:3000"}})
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_Root(t *testing.T) {
	rec := serve(newTestServer(t), http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome")
}

func TestServer_ItemsRoundTrip(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/api/items", `{"name":"Widget","description":"blue"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Widget"`)

	rec = serve(e, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"description":"blue"`)
}

func TestServer_CreateValidation(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodPost, "/api/items", `{"description":"no name"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(e, http.MethodPost, "/api/items", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GetItemNotFound(t *testing.T) {
	rec := serve(newTestServer(t), http.MethodGet, "/api/items/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CORS(t *testing.T) {
	e := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

type failingStore struct{}

func (failingStore) List(context.Context) ([]model.Item, error) { return nil, errors.New("disk gone") }
func (failingStore) Get(context.Context, string) (model.Item, error) {
	return model.Item{}, errors.New("disk gone")
}
func (failingStore) Create(context.Context, model.NewItem) (model.Item, error) {
	return model.Item{}, errors.New("disk gone")
}
func (failingStore) Ping(context.Context) error { return errors.New("disk gone") }

func TestServer_StoreFailures(t *testing.T) {
	e := NewServer(NewHandler(failingStore{}, nil), ServerConfig{})

	assert.Equal(t, http.StatusInternalServerError, serve(e, http.MethodGet, "/api/items", "").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(e, http.MethodPost, "/api/items", `{"name":"x"}`).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(e, http.MethodGet, "/health", "").Code)
}
