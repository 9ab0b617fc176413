package bitgen

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring
// systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    generateCounter   prometheus.Counter
//	    generateHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordGenerate(duration time.Duration, count uint64) {
//	    p.generateCounter.Inc()
//	    p.generateHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordGenerate is called after each value generation.
	// duration is the time taken, count the number of set bits in
	// the generated value.
	RecordGenerate(duration time.Duration, count uint64)

	// RecordSimplify is called after each shrink attempt.
	// ok reports whether the step changed the value.
	RecordSimplify(ok bool)

	// RecordComplicate is called after each undo attempt.
	// ok reports whether a pending shrink was reverted.
	RecordComplicate(ok bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(time.Duration, uint64) {}
func (NoopMetricsCollector) RecordSimplify(bool)                  {}
func (NoopMetricsCollector) RecordComplicate(bool)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external
// dependencies.
type BasicMetricsCollector struct {
	GenerateCount      atomic.Int64
	GenerateTotalNanos atomic.Int64
	GeneratedBits      atomic.Int64
	SimplifyCount      atomic.Int64
	SimplifyFailed     atomic.Int64
	ComplicateCount    atomic.Int64
	ComplicateFailed   atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(duration time.Duration, count uint64) {
	b.GenerateCount.Add(1)
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	b.GeneratedBits.Add(int64(count))
}

// RecordSimplify implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSimplify(ok bool) {
	b.SimplifyCount.Add(1)
	if !ok {
		b.SimplifyFailed.Add(1)
	}
}

// RecordComplicate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordComplicate(ok bool) {
	b.ComplicateCount.Add(1)
	if !ok {
		b.ComplicateFailed.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GenerateCount:    b.GenerateCount.Load(),
		GenerateAvgNanos: b.getAvgGenerateNanos(),
		GeneratedBits:    b.GeneratedBits.Load(),
		SimplifyCount:    b.SimplifyCount.Load(),
		SimplifyFailed:   b.SimplifyFailed.Load(),
		ComplicateCount:  b.ComplicateCount.Load(),
		ComplicateFailed: b.ComplicateFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgGenerateNanos() int64 {
	count := b.GenerateCount.Load()
	if count == 0 {
		return 0
	}
	return b.GenerateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GenerateCount    int64
	GenerateAvgNanos int64
	GeneratedBits    int64
	SimplifyCount    int64
	SimplifyFailed   int64
	ComplicateCount  int64
	ComplicateFailed int64
}
