package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/synclog/core"
)

func TestSlogHandler(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(t, nil)
	log := slog.New(NewSlogHandler(l))

	log.Info("request handled", "status", 200, "path", "/api")
	log.Warn("slow", slog.Group("db", slog.String("table", "users")))

	out := splitLines(buf.String())
	require.Len(t, out, 2)
	assert.Regexp(t, linePattern(core.InfoLevel, "request handled status=200 path=/api"), out[0])
	assert.Regexp(t, linePattern(core.WarnLevel, "slow db.table=users"), out[1])
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(t, nil)
	log := slog.New(NewSlogHandler(l)).
		With("service", "api").
		WithGroup("req").
		With("id", "r-1")

	log.Error("failed", "code", 7)

	out := splitLines(buf.String())
	require.Len(t, out, 1)
	assert.Regexp(t, linePattern(core.ErrorLevel, "failed service=api req.id=r-1 req.code=7"), out[0])
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(t, func(cfg *Config) { cfg.SetLevel(core.InfoLevel) })
	h := NewSlogHandler(l)
	ctx := context.Background()

	assert.True(t, h.Enabled(ctx, slog.LevelDebug-4))
	assert.True(t, h.Enabled(ctx, slog.LevelInfo))
	assert.False(t, h.Enabled(ctx, slog.LevelWarn))
	assert.False(t, h.Enabled(ctx, slog.LevelDebug))

	slog.New(h).Warn("dropped")
	assert.Zero(t, buf.Len())

	assert.Same(t, h, h.WithGroup(""))
}

func TestSlogLevelToCore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelError + 4, core.ErrorLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelDebug - 1, core.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slogLevelToCore(tt.in), tt.in.String())
	}
}
