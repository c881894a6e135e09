package lloyd

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with clustering-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a point count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogRun logs the outcome of a clustering run.
func (l *Logger) LogRun(ctx context.Context, iterations int, converged bool, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "clustering completed",
			"iterations", iterations,
			"converged", converged,
			"elapsed", elapsed,
		)
	}
}

// LogIteration logs one assign+update iteration.
func (l *Logger) LogIteration(ctx context.Context, iteration, changed int, elapsed time.Duration) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", iteration,
		"changed", changed,
		"elapsed", elapsed,
	)
}

// LogBackendFailure logs a failed backend delegation.
func (l *Logger) LogBackendFailure(ctx context.Context, backend string, err error) {
	l.WarnContext(ctx, "backend failed",
		"backend", backend,
		"error", err,
	)
}
