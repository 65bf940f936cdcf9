package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufLogger(slog.LevelDebug)

	l.Debug(ctx, "debug msg", "k", "v")
	l.Info(ctx, "info msg")
	l.Warn(ctx, "warn msg")
	l.Error(ctx, "error msg")

	out := buf.String()
	require.Contains(t, out, "debug msg")
	require.Contains(t, out, "info msg")
	require.Contains(t, out, "warn msg")
	require.Contains(t, out, "error msg")
	require.Contains(t, out, "k=v")
}

func TestSlogLogger_With(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufLogger(slog.LevelInfo)

	child := l.With("component", "dashboard")
	child.Info(ctx, "hello")

	require.Contains(t, buf.String(), "component=dashboard")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufLogger(slog.LevelWarn)

	l.Info(ctx, "should not appear")
	l.Warn(ctx, "should appear")

	lines := strings.TrimSpace(buf.String())
	require.NotContains(t, lines, "should not appear")
	require.Contains(t, lines, "should appear")
}
