package textaccel

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with textaccel-specific helpers.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(haystackLen, needleLen, offset int, duration time.Duration) {
	l.Debug("search completed",
		"haystack_len", haystackLen,
		"needle_len", needleLen,
		"offset", offset,
		"duration", duration,
	)
}

// LogRead logs a file read operation.
func (l *Logger) LogRead(path string, size int, duration time.Duration, err error) {
	if err != nil {
		l.Error("read failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("read completed",
			"path", path,
			"size", size,
			"duration", duration,
		)
	}
}

// LogScan logs a multi-file scan operation.
func (l *Logger) LogScan(ctx context.Context, files, matched int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"files", files,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "scan completed",
			"files", files,
			"matched", matched,
			"duration", duration,
		)
	}
}
