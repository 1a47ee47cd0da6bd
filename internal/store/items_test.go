package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"scaffolder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestItems(t *testing.T) *Items {
	t.Helper()
	s, err := OpenItems(context.Background(), filepath.Join(t.TempDir(), "nested", "items.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestItems_CreateListGet(t *testing.T) {
	ctx := context.Background()
	s := openTestItems(t)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	a, err := s.Create(ctx, model.NewItem{Name: " first ", Description: "one"})
	require.NoError(t, err)
	b, err := s.Create(ctx, model.NewItem{Name: "second"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "first", a.Name)

	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0])
	assert.Equal(t, b, list[1])

	got, err := s.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItems_RejectsBlankName(t *testing.T) {
	s := openTestItems(t)
	_, err := s.Create(context.Background(), model.NewItem{Name: "   "})
	assert.Error(t, err)
}

func TestItems_PersistAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "items.sqlite")

	s, err := OpenItems(ctx, path)
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	created, err := s.Create(ctx, model.NewItem{Name: "kept"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenItems(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
	assert.NoError(t, s.Ping(ctx))
}

func TestOpenItems_MissingPath(t *testing.T) {
	_, err := OpenItems(context.Background(), " ")
	assert.Error(t, err)
}
