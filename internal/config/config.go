// Package config loads ~/.scaffolder/config.yaml and applies environment
// overrides. Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProxyAddr   = ":3000"
	DefaultBackendAddr = ":8000"
	DefaultBackendURL  = "http://backend:8000"
)

type Config struct {
	Proxy   ProxyConfig   `yaml:"proxy"`
	Backend BackendConfig `yaml:"backend"`
	TUI     TUIConfig     `yaml:"tui"`
}

type ProxyConfig struct {
	Addr string `yaml:"addr,omitempty"`
	// Target is where /api/* is forwarded to.
	Target string `yaml:"target,omitempty"`
}

type BackendConfig struct {
	Addr string `yaml:"addr,omitempty"`
	// DB is the SQLite file for the items store. Empty means <config dir>/items.sqlite.
	DB          string   `yaml:"db,omitempty"`
	CORSOrigins []string `yaml:"corsOrigins,omitempty"`
}

type TUIConfig struct {
	// Tree is an optional YAML project file opened instead of the sample project.
	Tree    string `yaml:"tree,omitempty"`
	LogFile string `yaml:"logFile,omitempty"`
}

func Default() *Config {
	return &Config{
		Proxy: ProxyConfig{
			Addr:   DefaultProxyAddr,
			Target: DefaultBackendURL,
		},
		Backend: BackendConfig{
			Addr:        DefaultBackendAddr,
			CORSOrigins: []string{"http://localhost:3000"},
		},
	}
}

func Dir() (string, error) {
	// Tests and sandboxes point this elsewhere to keep ~/.scaffolder untouched.
	if v := strings.TrimSpace(os.Getenv("SCAFFOLDER_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".scaffolder"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file (a missing file is not an error) and applies env
// overrides.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.fillDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("SCAFFOLDER_PROXY_ADDR")); v != "" {
		c.Proxy.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("SCAFFOLDER_BACKEND_URL")); v != "" {
		c.Proxy.Target = v
	}
	if v := strings.TrimSpace(os.Getenv("SCAFFOLDER_BACKEND_ADDR")); v != "" {
		c.Backend.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("SCAFFOLDER_DB")); v != "" {
		c.Backend.DB = v
	}
	if v := strings.TrimSpace(os.Getenv("SCAFFOLDER_TREE")); v != "" {
		c.TUI.Tree = v
	}
}

func (c *Config) fillDefaults() error {
	if c.Proxy.Addr == "" {
		c.Proxy.Addr = DefaultProxyAddr
	}
	if c.Proxy.Target == "" {
		c.Proxy.Target = DefaultBackendURL
	}
	if c.Backend.Addr == "" {
		c.Backend.Addr = DefaultBackendAddr
	}
	if c.Backend.DB == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		c.Backend.DB = filepath.Join(dir, "items.sqlite")
	}
	return nil
}

// Save writes c to path, creating the parent directory.
func Save(path string, c *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
