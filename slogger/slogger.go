// Package slogger provides structured logging for crosscheck. The Logger
// interface is compatible in shape with slog and zerolog so callers never
// depend on a concrete implementation.
package slogger

import (
	"context"
	"strings"
)

// DefaultLogger is used when no logger is configured.
var DefaultLogger Logger = NewDevNullLogger()

// Logger is the logging interface used throughout the application.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// With returns a Logger with the key-value pairs added to its context.
	With(keysAndValues ...any) Logger
}

type contextKey string

const loggerKey contextKey = "crosscheck.logger"

// WithLogger returns a new context carrying the given logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// Ctx returns the logger stored in the context, or DefaultLogger.
func Ctx(ctx context.Context) Logger {
	if ctx == nil {
		return DefaultLogger
	}
	if logger, ok := ctx.Value(loggerKey).(Logger); ok {
		return logger
	}
	return DefaultLogger
}

// LevelFromString converts a level name to a LogLevel, defaulting to info.
func LevelFromString(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return DefaultLogLevel
	}
}
