package slogpretty

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tigerwill90/trimatch/internal/ansi"
)

func TestLogHandler_Handle(t *testing.T) {
	bufWo := bytes.NewBuffer(nil)
	bufWe := bytes.NewBuffer(nil)

	h := New(bufWo, bufWe, slog.LevelDebug)

	record := slog.Record{
		Time:    time.Date(2024, 06, 26, 0, 0, 0, 0, time.UTC),
		Message: "pattern registered",
		Level:   slog.LevelDebug,
	}
	record.Add("kind", "wildcard")
	record.Add("pattern", "src/*.go")
	record.Add("match", "src/")
	record.Add(slog.Group("foo", slog.String("bar", "bar")))
	require.NoError(t, h.Handle(context.Background(), record))
	record.Level = slog.LevelInfo
	require.NoError(t, h.Handle(context.Background(), record))
	record.Level = slog.LevelWarn
	require.NoError(t, h.Handle(context.Background(), record))

	assert.Contains(t, bufWo.String(), "[TRIMATCH] ")
	assert.Contains(t, ansi.Strip(bufWo.String()), "kind= wildcard  pattern=src/*.go match=src/")
	assert.Contains(t, bufWo.String(), "src/*.go")
	assert.Contains(t, bufWo.String(), "bar=bar")
	assert.Equal(t, 3, bytes.Count(bufWo.Bytes(), []byte{'\n'}))
	assert.Empty(t, bufWe.String())

	record.Level = slog.LevelError
	record.Add("error", errors.New("invalid pattern").Error())
	require.NoError(t, h.Handle(context.Background(), record))
	assert.Contains(t, bufWe.String(), "invalid pattern")
}

func TestLogHandler_Enabled(t *testing.T) {
	h := New(bytes.NewBuffer(nil), bytes.NewBuffer(nil), slog.LevelInfo)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
}

func TestLogHandler_WithAttrsAndGroup(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	log := slog.New(New(buf, buf, slog.LevelDebug)).With("kind", "dir").WithGroup("rules")
	log.Info("pattern registered", "pattern", "src/")

	assert.Contains(t, buf.String(), "kind=")
	assert.Contains(t, buf.String(), "rules.pattern=")
}
