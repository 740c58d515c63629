// Package ctxlog builds the application logger from the global settings
// and provides a context key for passing it through context.Context.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/flarebyte/seshat-scaffold/internal/settings"
)

// key is an unexported type to prevent collisions with context keys
// from other packages.
type key struct{}

var loggerKey = key{}

// New creates a configured slog.Logger. It does not touch the global
// default logger, allowing for isolated instances. Every record carries
// an "app" attribute taken from the settings.
func New(g settings.Global, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(g.LogLevel)}

	var handler slog.Handler
	if g.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("app", g.AppName))
}

// ParseLevel converts a level string to a slog.Level, defaulting to
// info for anything unrecognized.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context. If no logger is
// found, it returns the default global logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
