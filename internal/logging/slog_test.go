package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	l, buf := newBufLogger()
	ctx := context.Background()

	l.Debug(ctx, "d1")
	l.Info(ctx, "i1", "k", "v")
	l.Warn(ctx, "w1")
	l.Error(ctx, "e1")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=i1")
	assert.Contains(t, out, "k=v")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestSlogLogger_With(t *testing.T) {
	l, buf := newBufLogger()

	child := l.With("component", "session")
	require.NotNil(t, child)
	child.Info(context.Background(), "hello")

	assert.Contains(t, buf.String(), "component=session")
}

func TestColorHandler_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	h := NewColorHandler(&buf, nil)
	l := slog.New(h)

	l.Error("boom")

	out := buf.String()
	assert.Contains(t, out, "msg=boom")
	assert.NotContains(t, out, "\033[31m", "no color codes when output is not a terminal")
}
