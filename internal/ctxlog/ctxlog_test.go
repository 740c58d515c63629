package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flarebyte/seshat-scaffold/internal/settings"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"ERROR": slog.LevelError,
		"":      slog.LevelInfo,
		"bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewJSONCarriesAppAttribute(t *testing.T) {
	var buf bytes.Buffer
	logger := New(settings.Global{AppName: "demoapp", LogLevel: "info", LogFormat: "json"}, &buf)
	logger.Info("hello", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "demoapp", rec["app"])
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "v", rec["k"])
}

func TestNewHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(settings.Global{AppName: "demoapp", LogLevel: "error", LogFormat: "text"}, &buf)
	logger.Info("dropped")
	require.Zero(t, buf.Len())
	logger.Error("kept")
	require.Contains(t, buf.String(), "kept")
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(settings.Global{AppName: "demoapp", LogLevel: "debug", LogFormat: "text"}, &buf)
	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}
