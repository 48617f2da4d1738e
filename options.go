package kohonen

import (
	"log/slog"
	"math/rand/v2"
)

type options struct {
	rng              Rand
	initializer      Initializer
	metricsCollector MetricsCollector
	logger           *Logger
	progressEvery    int
	onProgress       func(Progress)
}

// Option configures Grid and Trainer construction.
//
// Options that do not apply to a constructor are ignored by it
// (e.g. WithInitializer has no effect on NewTrainer).
type Option func(*options)

// WithRand configures the random source used for weight initialization
// (Grid) and sample selection (Trainer).
//
// Pass the same seeded source to reproduce a run:
//
//	rng := kohonen.NewRand(42)
//	g, _ := kohonen.New(10, 10, 2, kohonen.WithRand(rng))
//	tr := kohonen.NewTrainer(g, kohonen.WithRand(rng))
//
// If nil is passed, a privately seeded source is used.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithInitializer configures how unit weights are drawn at construction.
//
// If nil is passed, UniformInitializer(0, 1) is used.
func WithInitializer(init Initializer) Option {
	return func(o *options) {
		o.initializer = init
	}
}

// WithMetricsCollector configures a metrics collector for monitoring training.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kohonen.BasicMetricsCollector{}
//	tr := kohonen.NewTrainer(g, kohonen.WithMetricsCollector(metrics))
//	// ... train ...
//	stats := metrics.GetStats()
//	fmt.Printf("Steps: %d, Avg latency: %dns\n", stats.StepCount, stats.StepAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kohonen.NewJSONLogger(slog.LevelInfo)
//	tr := kohonen.NewTrainer(g, kohonen.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithProgress reports training progress every `every` steps.
// The trainer logs a progress record and calls fn (if non-nil) with the
// current step. every <= 0 disables progress reporting.
func WithProgress(every int, fn func(Progress)) Option {
	return func(o *options) {
		o.progressEvery = every
		o.onProgress = fn
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		initializer:      UniformInitializer(0, 1),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rng == nil {
		o.rng = NewRand(rand.Uint64())
	}
	if o.initializer == nil {
		o.initializer = UniformInitializer(0, 1)
	}
	return o
}
