package bitgen

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures strategy construction behavior.
//
// Options exist so the typed constructors (WordBetween, SparseSampled,
// ...) keep a small surface while observability stays pluggable.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for generation
// and shrink operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bitgen.BasicMetricsCollector{}
//	s := bitgen.WordBetween[uint32](0, 16, bitgen.WithMetricsCollector(metrics))
//	// ... generate and shrink ...
//	stats := metrics.GetStats()
//	fmt.Printf("Generated: %d, Simplify steps: %d\n", stats.GenerateCount, stats.SimplifyCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for generation operations.
//
// Example with JSON logging:
//
//	logger := bitgen.NewJSONLogger(slog.LevelDebug)
//	s := bitgen.WordAny[uint64](bitgen.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets
// it. Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
