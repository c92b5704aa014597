package infrastructure

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"emojicli/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"garbage", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestCreateLogger_ConsoleFormats(t *testing.T) {
	for _, format := range []string{"json", "text"} {
		t.Run(format, func(t *testing.T) {
			logger, err := createLogger(config.LoggingConfig{
				Level:  "info",
				Format: format,
				Output: "console",
			})
			assert.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestRunIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRunID(ctx))

	ctx = ContextWithRunID(ctx)
	runID := GetRunID(ctx)
	assert.NotEmpty(t, runID)
	assert.Len(t, runID, 36, "run IDs are UUID v4 strings")

	ctx2 := WithRunID(context.Background(), "fixed-id")
	assert.Equal(t, "fixed-id", GetRunID(ctx2))
}

func TestLoggerWithContext(t *testing.T) {
	logger := LoggerWithContext(context.Background())
	assert.NotNil(t, logger)

	logger = LoggerWithContext(WithRunID(context.Background(), "abc"))
	assert.NotNil(t, logger)
}
