package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug)
	logger.now = func() time.Time { return time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC) }

	logger.Info("split", "routed ## A to pending")

	assert.Equal(t, "[2025-12-30 09:32:51] [INFO] [split] routed ## A to pending\n", buf.String())
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Debug("split", "debug message")
	logger.Info("split", "info message")
	logger.Warn("split", "warn message")
	logger.Error("split", "error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "[WARN] [split] warn message")
	assert.Contains(t, output, "[ERROR] [split] error message")
	assert.Equal(t, 2, strings.Count(output, "\n"))
}

func TestLogger_NilWriter(t *testing.T) {
	logger := New(nil, slog.LevelDebug)

	assert.NotPanics(t, func() {
		logger.Error("split", "dropped")
	})
}

func TestLevelToString(t *testing.T) {
	assert.Equal(t, "DEBUG", levelToString(slog.LevelDebug))
	assert.Equal(t, "INFO", levelToString(slog.LevelInfo))
	assert.Equal(t, "WARN", levelToString(slog.LevelWarn))
	assert.Equal(t, "ERROR", levelToString(slog.LevelError))
	assert.Equal(t, "INFO", levelToString(slog.Level(42)))
}
