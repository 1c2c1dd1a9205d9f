// Package observability holds the logging, metrics and tracing setup.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LogConfig configures the logger.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	Output io.Writer
}

// ParseLevel maps a level name to a slog level. An empty name is info.
func ParseLevel(name string) (level slog.Level, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		err = errors.Errorf("unknown log level %q", name)
	}
	return level, err
}

// NewLogger builds a text or JSON slog logger. Output defaults to stderr.
func NewLogger(config LogConfig) (logger *slog.Logger, err error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return logger, err
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(config.Format) {
	case "", "text":
		handler = slog.NewTextHandler(output, opts)
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		err = errors.Errorf("unknown log format %q", config.Format)
		return logger, err
	}

	logger = slog.New(handler)
	return logger, err
}
