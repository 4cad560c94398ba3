package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/olgasafonova/danish-cpr-mcp-server/internal/cpr"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"default is info", "", slog.LevelInfo, slog.LevelDebug},
		{"debug", "debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"warn", "warn", slog.LevelWarn, slog.LevelInfo},
		{"error", "error", slog.LevelError, slog.LevelWarn},
		{"mixed case", "WARN", slog.LevelWarn, slog.LevelInfo},
		{"unknown falls back to info", "verbose", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newLogger(tt.level)
			if logger == nil {
				t.Fatal("newLogger returned nil")
			}
			if !logger.Enabled(context.Background(), tt.enabled) {
				t.Errorf("level %v should be enabled for LOG_LEVEL=%q", tt.enabled, tt.level)
			}
			if logger.Enabled(context.Background(), tt.muted) {
				t.Errorf("level %v should be muted for LOG_LEVEL=%q", tt.muted, tt.level)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := cpr.NewValidator(cpr.WithLogger(logger))

	server := newServer(validator, logger)
	if server == nil {
		t.Fatal("newServer returned nil")
	}
}
