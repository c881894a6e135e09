package lloyd

import (
	"log/slog"

	"github.com/hupe1980/lloyd/backend"
	"github.com/hupe1980/lloyd/resource"
)

// DefaultMaxIterations is the iteration cap used when none is configured.
const DefaultMaxIterations = 100

// DefaultSeed seeds runs when neither WithSeed nor WithRandSource is given.
const DefaultSeed int64 = 1

// RandSource draws seed indices. *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

type options struct {
	maxIterations    int
	workers          int
	seed             int64
	randSource       RandSource
	backend          backend.Backend
	resources        *resource.Controller
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Engine.
type Option func(*options)

// WithMaxIterations caps the number of assign+update iterations per run.
// Values < 1 make every run fail with ErrInvalidMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithWorkers sets the number of parallel workers per run.
// If n <= 0, GOMAXPROCS is used. Small datasets use fewer workers regardless.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSeed seeds every run from a fresh source, so repeated runs over the
// same data and k produce identical results.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.randSource = nil
	}
}

// WithRandSource draws seeds from src, which is shared by every run of the
// engine. Successive runs continue the source's sequence. src must be safe
// for concurrent use if runs overlap.
func WithRandSource(src RandSource) Option {
	return func(o *options) {
		o.randSource = src
	}
}

// WithBackend delegates runs to b instead of the built-in worker pool.
// Pass nil to use the built-in path.
func WithBackend(b backend.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithResourceController bounds concurrent runs and their working-set memory.
//
// Example:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:  512 << 20,
//	    MaxConcurrentRuns: 2,
//	})
//	eng := lloyd.New(lloyd.WithResourceController(rc))
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &lloyd.BasicMetricsCollector{}
//	eng := lloyd.New(lloyd.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RunCount, stats.RunAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := lloyd.NewJSONLogger(slog.LevelInfo)
//	eng := lloyd.New(lloyd.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

func applyOptions(optFns []Option) options {
	o := options{
		maxIterations:    DefaultMaxIterations,
		seed:             DefaultSeed,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
