package kohonen

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with kohonen-specific context.
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

// WithRun adds a training run ID to the logger.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run", id),
	}
}

// WithGridSize adds the grid height and width to the logger.
func (l *Logger) WithGridSize(height, width int) *Logger {
	return &Logger{
		Logger: l.Logger.With("height", height, "width", width),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogTrainStart logs the start of a training run.
func (l *Logger) LogTrainStart(ctx context.Context, samples, iterations int, schedule Schedule) {
	l.InfoContext(ctx, "training started",
		"samples", samples,
		"iterations", iterations,
		"schedule", schedule,
	)
}

// LogProgress logs an intermediate training step.
func (l *Logger) LogProgress(ctx context.Context, p Progress) {
	l.InfoContext(ctx, "training progress",
		"step", p.Step,
		"total", p.Total,
		"eta", p.Eta,
		"sigma", p.Sigma,
		"bmu_row", p.BMU.Row,
		"bmu_col", p.BMU.Col,
	)
}

// LogTrainDone logs the end of a training run.
func (l *Logger) LogTrainDone(ctx context.Context, steps int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "training aborted",
			"steps", steps,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "training completed",
			"steps", steps,
			"elapsed", elapsed,
		)
	}
}

// LogQuantization logs a quantization error evaluation.
func (l *Logger) LogQuantization(ctx context.Context, samples int, qe float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "quantization error failed",
			"samples", samples,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "quantization error computed",
			"samples", samples,
			"qe", qe,
		)
	}
}
