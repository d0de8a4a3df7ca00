package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/config"
)

// newLogger builds the application logger. The terminal belongs to the UI,
// so logs go to the configured file; withStderr also copies them to stderr.
// An empty file path discards file output.
func newLogger(cfg config.LoggingConfig, withStderr bool) (*log.Logger, func(), error) {
	var out []io.Writer
	closer := func() {}

	if cfg.File != "" {
		path, err := expandHome(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = append(out, f)
		closer = func() { f.Close() }
	}
	if withStderr {
		out = append(out, os.Stderr)
	}

	var w io.Writer = io.Discard
	switch len(out) {
	case 0:
	case 1:
		w = out[0]
	default:
		w = io.MultiWriter(out...)
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
		Level:           level,
	})
	return l, closer, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
