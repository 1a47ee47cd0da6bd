package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCAFFOLDER_CONFIG_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultProxyAddr, cfg.Proxy.Addr)
	assert.Equal(t, DefaultBackendURL, cfg.Proxy.Target)
	assert.Equal(t, DefaultBackendAddr, cfg.Backend.Addr)
	assert.Equal(t, filepath.Join(dir, "items.sqlite"), cfg.Backend.DB)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Backend.CORSOrigins)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCAFFOLDER_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
proxy:
  addr: ":9000"
  target: http://localhost:8001
tui:
  tree: ./project.yaml
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Proxy.Addr)
	assert.Equal(t, "http://localhost:8001", cfg.Proxy.Target)
	assert.Equal(t, "./project.yaml", cfg.TUI.Tree)

	t.Setenv("SCAFFOLDER_BACKEND_URL", "http://api.internal:8000")
	t.Setenv("SCAFFOLDER_DB", "/tmp/x.sqlite")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:8000", cfg.Proxy.Target)
	assert.Equal(t, "/tmp/x.sqlite", cfg.Backend.DB)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCAFFOLDER_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("proxy: [\n"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCAFFOLDER_CONFIG_DIR", dir)
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := Default()
	cfg.TUI.LogFile = "/tmp/tui.log"
	require.NoError(t, Save(path, cfg))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tui.log", got.TUI.LogFile)
}
