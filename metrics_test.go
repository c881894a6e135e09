package lloyd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	assert.Zero(t, m.GetStats().RunAvgNanos)

	m.RecordRun(3, 5, true, 10*time.Millisecond, nil)
	m.RecordRun(3, 100, false, 30*time.Millisecond, nil)
	m.RecordRun(9, 0, false, 2*time.Millisecond, errors.New("boom"))
	m.RecordIteration(3, 1, 40, time.Millisecond)
	m.RecordIteration(3, 2, 2, time.Millisecond)
	m.RecordBackendFailure("gpu", 3)

	stats := m.GetStats()
	assert.Equal(t, int64(3), stats.RunCount)
	assert.Equal(t, int64(1), stats.RunErrors)
	assert.Equal(t, int64(1), stats.ConvergedCount)
	assert.Equal(t, (14 * time.Millisecond).Nanoseconds(), stats.RunAvgNanos)
	assert.Equal(t, int64(2), stats.IterationCount)
	assert.Equal(t, int64(42), stats.ReassignedTotal)
	assert.Equal(t, int64(1), stats.BackendFailures)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}

	m.RecordRun(1, 1, true, time.Second, nil)
	m.RecordIteration(1, 1, 0, time.Second)
	m.RecordBackendFailure("x", 1)
}
