package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"userhub/internal/config"
)

// New builds the process-wide logger writing to stdout and installs it as
// the slog default.
func New(cfg *config.Config) *slog.Logger {
	logger := NewWithWriter(cfg, os.Stdout)

	slog.SetDefault(logger)

	return logger
}

// NewWithWriter builds a logger for the given destination. Production gets
// JSON lines, everything else a human-readable text format.
func NewWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.AppEnv) == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
