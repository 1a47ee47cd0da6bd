// Package logging builds the zap loggers used by the servers and the TUI.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool
	// Path sends output to a file instead of stderr. The TUI owns the
	// terminal, so it always logs to a file or not at all.
	Path string
	// Console switches from JSON to the human readable encoder.
	Console bool
}

func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if opts.Console {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if opts.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if p := strings.TrimSpace(opts.Path); p != "" {
		cfg.OutputPaths = []string{p}
		cfg.ErrorOutputPaths = []string{p}
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// ForTUI logs to path, or discards everything when path is empty.
func ForTUI(path string, verbose bool) (*zap.Logger, error) {
	if strings.TrimSpace(path) == "" {
		return zap.NewNop(), nil
	}
	return New(Options{Verbose: verbose, Path: path, Console: true})
}
