package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/debugdump/internal/adapters/logger"
)

func TestPrettyHandler(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name  string
		level slog.Level
		attrs []any
		want  string
	}{
		{name: "info", level: slog.LevelInfo, want: "hello\n"},
		{name: "warn", level: slog.LevelWarn, want: "! hello\n"},
		{name: "error", level: slog.LevelError, want: "✗ hello\n"},
		{name: "debug filtered", level: slog.LevelDebug, want: ""},
		{name: "attrs", level: slog.LevelInfo, attrs: []any{"repo", "fedora"}, want: "hello repo=fedora\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, nil))
			lg.Log(t.Context(), tt.level, "hello", tt.attrs...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	base := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	lg := slog.New(base.WithAttrs([]slog.Attr{slog.String("phase", "dump")}).WithGroup("repo"))

	lg.Info("ignored")
	lg.Warn("skipped", "id", "updates")

	assert.Equal(t, "! skipped repo.phase=dump repo.id=updates\n", buf.String())
}
