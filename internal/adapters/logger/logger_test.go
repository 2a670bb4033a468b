package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sieve/internal/adapters/logger"
	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.NewWithWriter(buf)

	lg.Info("building composite set")
	lg.Warn("bound is small")
	lg.Error(os.ErrPermission)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "building composite set", lines[0])
	assert.Equal(t, "! bound is small", lines[1])
	assert.Equal(t, "✗ Error: permission denied", lines[2])
}

func TestLogger_ErrorNil(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithWriter(buf)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.NewWithWriter(buf)

	err := zerr.Wrap(errors.New("bad digit"), "failed to load configuration")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: failed to load configuration")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ bad digit")
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithWriter(buf)
	lg.SetJSON(true)

	lg.Info("hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestLogger_SetOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	first := &bytes.Buffer{}
	second := &bytes.Buffer{}
	lg := logger.NewWithWriter(first)

	lg.SetOutput(second)
	lg.Info("moved")

	assert.Empty(t, first.String())
	assert.Equal(t, "moved\n", second.String())
}

func TestFormatErrorChain(t *testing.T) {
	got := logger.FormatErrorChain([]string{"top\nmore", "cause"})
	want := strings.Join([]string{
		"Error: top",
		"       more",
		"",
		"  Caused by:",
		"    → cause",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestCollectMessages_PlainError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, logger.CollectMessages(errors.New("boom")))
}

func TestNewFromEnv_LogFormat(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantJSON bool
	}{
		{name: "unset", env: map[string]string{}},
		{name: "json", env: map[string]string{domain.LogFormatEnvVar: domain.LogFormatJSON}, wantJSON: true},
		{name: "other value", env: map[string]string{domain.LogFormatEnvVar: "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			lg := logger.NewFromEnv(func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			})
			buf := &bytes.Buffer{}
			lg.SetOutput(buf)
			lg.Info("hello")

			var rec map[string]any
			err := json.Unmarshal(buf.Bytes(), &rec)
			if tt.wantJSON {
				require.NoError(t, err)
				assert.Equal(t, "hello", rec["msg"])
			} else {
				require.Error(t, err)
				assert.Equal(t, "hello\n", buf.String())
			}
		})
	}
}
