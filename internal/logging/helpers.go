package logging

import (
	"context"
	"log/slog"
)

// Debug logs a debug message when a logger is configured.
func Debug(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.DebugContext(ctx, msg, args...)
	}
}

// Info logs an info message when a logger is configured.
func Info(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.InfoContext(ctx, msg, args...)
	}
}

// Warn logs a warning when a logger is configured.
func Warn(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.WarnContext(ctx, msg, args...)
	}
}
