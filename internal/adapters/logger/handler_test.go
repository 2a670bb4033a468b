package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sieve/internal/adapters/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		msg   string
		want  string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information", want: "information\n"},
		{name: "warn level", level: slog.LevelWarn, msg: "careful", want: "! careful\n"},
		{name: "error level", level: slog.LevelError, msg: "broken", want: "✗ broken\n"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "hidden", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	slog.New(logger.NewPrettyHandler(buf, nil)).With("bound", 100).Info("built", "entries", 42)
	assert.Equal(t, "built bound=100 entries=42\n", buf.String())

	buf.Reset()
	slog.New(logger.NewPrettyHandler(buf, nil)).WithGroup("sieve").Info("built", "entries", 42)
	assert.Equal(t, "built sieve.entries=42\n", buf.String())
}
