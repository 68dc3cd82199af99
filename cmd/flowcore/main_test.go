package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		value    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.value))
		})
	}
}

func TestResolvePodID(t *testing.T) {
	t.Run("POD_ID wins", func(t *testing.T) {
		t.Setenv("POD_ID", "pod-7")
		t.Setenv("HOSTNAME", "flowcore-abc")
		assert.Equal(t, "pod-7", resolvePodID())
	})

	t.Run("HOSTNAME fallback", func(t *testing.T) {
		t.Setenv("POD_ID", "")
		t.Setenv("HOSTNAME", "flowcore-abc")
		assert.Equal(t, "flowcore-abc", resolvePodID())
	})

	t.Run("local default", func(t *testing.T) {
		t.Setenv("POD_ID", "")
		t.Setenv("HOSTNAME", "")
		assert.Equal(t, "local", resolvePodID())
	})
}
