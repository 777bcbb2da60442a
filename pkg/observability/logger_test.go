package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates text logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelInfo, Format: LogFormatText, Output: &buf})
		require.NotNil(t, logger)

		logger.Info("test message", "key", "value")

		assert.Contains(t, buf.String(), "test message")
		assert.Contains(t, buf.String(), "key=value")
	})

	t.Run("creates JSON logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelInfo, Format: LogFormatJSON, Output: &buf})

		logger.Info("test message", "key", "value")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "test message", entry["msg"])
		assert.Equal(t, "value", entry["key"])
	})

	t.Run("respects log level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelWarn, Format: LogFormatText, Output: &buf})

		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("adds source location when asked", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelInfo, Format: LogFormatJSON, Output: &buf, AddSource: true})

		logger.Info("located")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Contains(t, entry, slog.SourceKey)
	})

	t.Run("adds service attributes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{
			Level:          LogLevelInfo,
			Format:         LogFormatJSON,
			Output:         &buf,
			ServiceName:    "tasklist",
			ServiceVersion: "1.2.3",
		})

		logger.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "tasklist", entry["service"])
		assert.Equal(t, "1.2.3", entry["version"])
	})

	t.Run("adds correlation ID and operation from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelInfo, Format: LogFormatJSON, Output: &buf})
		ctx := WithCorrelationID(context.Background(), "corr-42")
		ctx = WithOperation(ctx, "task.add")

		logger.InfoContext(ctx, "with context")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "corr-42", entry[CorrelationIDKey])
		assert.Equal(t, "task.add", entry[OperationKey])
	})
}

func TestDefaultLogConfig(t *testing.T) {
	cfg := DefaultLogConfig()

	assert.Equal(t, LogLevelWarn, cfg.Level)
	assert.Equal(t, LogFormatText, cfg.Format)
	assert.Equal(t, "tasklist", cfg.ServiceName)
	assert.NotNil(t, cfg.Output)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"err", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, LogFormatJSON, ParseFormat("json"))
	assert.Equal(t, LogFormatJSON, ParseFormat(" JSON "))
	assert.Equal(t, LogFormatText, ParseFormat("text"))
	assert.Equal(t, LogFormatText, ParseFormat("yaml"))
}

func TestAttributeHandler(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	h := &attributeHandler{handler: base, attrs: []slog.Attr{slog.String("service", "tasklist")}}

	t.Run("WithAttrs returns new handler", func(t *testing.T) {
		next := h.WithAttrs([]slog.Attr{slog.String("k", "v")})
		assert.NotSame(t, h, next)
		_, ok := next.(*attributeHandler)
		assert.True(t, ok)
	})

	t.Run("WithGroup returns new handler", func(t *testing.T) {
		next := h.WithGroup("grp")
		assert.NotSame(t, h, next)
	})

	t.Run("Enabled delegates to base handler", func(t *testing.T) {
		assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	})
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelDebug, Format: LogFormatText, Output: &buf})

	LogDuration(context.Background(), logger, "task.list", time.Now().Add(-5*time.Millisecond))

	assert.Contains(t, buf.String(), "operation completed")
	assert.Contains(t, buf.String(), "operation=task.list")
	assert.Contains(t, buf.String(), DurationKey)
}
