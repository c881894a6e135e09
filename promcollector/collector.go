// Package promcollector exports engine metrics to Prometheus.
package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/lloyd"
)

var _ lloyd.MetricsCollector = (*Collector)(nil)

// Collector implements lloyd.MetricsCollector on Prometheus metrics.
type Collector struct {
	runLatency      *prometheus.HistogramVec
	runIterations   prometheus.Histogram
	iterLatency     prometheus.Histogram
	reassigned      prometheus.Counter
	backendFailures *prometheus.CounterVec
}

// New creates a Collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		runLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lloyd_run_duration_seconds",
			Help:    "Duration of clustering runs",
			Buckets: prometheus.DefBuckets,
		}, []string{"status"}),
		runIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lloyd_run_iterations",
			Help:    "Iterations performed per successful run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		iterLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lloyd_iteration_duration_seconds",
			Help:    "Duration of one assign+update iteration",
			Buckets: prometheus.DefBuckets,
		}),
		reassigned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lloyd_points_reassigned_total",
			Help: "Points that changed cluster during assignment passes",
		}),
		backendFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lloyd_backend_failures_total",
			Help: "Runs failed by their backend",
		}, []string{"backend"}),
	}

	for _, m := range []prometheus.Collector{
		c.runLatency,
		c.runIterations,
		c.iterLatency,
		c.reassigned,
		c.backendFailures,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordRun implements lloyd.MetricsCollector.
func (c *Collector) RecordRun(k, iterations int, converged bool, duration time.Duration, err error) {
	status := "converged"
	switch {
	case err != nil:
		status = "error"
	case !converged:
		status = "capped"
	}
	c.runLatency.WithLabelValues(status).Observe(duration.Seconds())

	if err == nil {
		c.runIterations.Observe(float64(iterations))
	}
}

// RecordIteration implements lloyd.MetricsCollector.
func (c *Collector) RecordIteration(k, iteration, changed int, duration time.Duration) {
	c.iterLatency.Observe(duration.Seconds())
	c.reassigned.Add(float64(changed))
}

// RecordBackendFailure implements lloyd.MetricsCollector.
func (c *Collector) RecordBackendFailure(backend string, k int) {
	c.backendFailures.WithLabelValues(backend).Inc()
}
