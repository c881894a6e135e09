package lloyd

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// promcollector package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordRun is called after each run.
	// k is the requested cluster count, iterations the number performed,
	// duration the total time taken, err is nil if successful.
	RecordRun(k, iterations int, converged bool, duration time.Duration, err error)

	// RecordIteration is called after each iteration of the built-in path.
	// changed is the number of points that switched cluster.
	RecordIteration(k, iteration, changed int, duration time.Duration)

	// RecordBackendFailure is called when a backend fails or returns a
	// malformed solution.
	RecordBackendFailure(backend string, k int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(int, int, int, time.Duration)   {}
func (NoopMetricsCollector) RecordBackendFailure(string, int)               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	ConvergedCount  atomic.Int64
	IterationCount  atomic.Int64
	ReassignedTotal atomic.Int64
	BackendFailures atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(k, iterations int, converged bool, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	if converged {
		b.ConvergedCount.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(k, iteration, changed int, duration time.Duration) {
	b.IterationCount.Add(1)
	b.ReassignedTotal.Add(int64(changed))
}

// RecordBackendFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBackendFailure(backend string, k int) {
	b.BackendFailures.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:        b.RunCount.Load(),
		RunErrors:       b.RunErrors.Load(),
		RunAvgNanos:     b.getAvgRunNanos(),
		ConvergedCount:  b.ConvergedCount.Load(),
		IterationCount:  b.IterationCount.Load(),
		ReassignedTotal: b.ReassignedTotal.Load(),
		BackendFailures: b.BackendFailures.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount        int64
	RunErrors       int64
	RunAvgNanos     int64
	ConvergedCount  int64
	IterationCount  int64
	ReassignedTotal int64
	BackendFailures int64
}
