package bitgen

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitgen-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithStrategy adds a strategy name field to the logger.
func (l *Logger) WithStrategy(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", name),
	}
}

// WithSeed adds a seed field to the logger (useful for tagging
// reproducible runs).
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// WithFloor adds a shrink floor field to the logger.
func (l *Logger) WithFloor(floor uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("floor", floor),
	}
}

// LogGenerate logs a value generation.
func (l *Logger) LogGenerate(strategy string, count, length uint64) {
	l.Debug("generation completed",
		"strategy", strategy,
		"bits", count,
		"length", length,
	)
}
