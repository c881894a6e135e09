package resource

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	require.NoError(t, c.AcquireMemory(50))
	assert.Equal(t, int64(50), c.MemoryUsage())

	require.NoError(t, c.AcquireMemory(40))
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Would exceed the limit
	err := c.AcquireMemory(20)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	require.NoError(t, c.AcquireMemory(20))
	assert.Equal(t, int64(60), c.MemoryUsage())
	assert.Equal(t, int64(100), c.MemoryLimit())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	require.NoError(t, c.AcquireMemory(1000))
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
	assert.Zero(t, c.MemoryLimit())
}

func TestController_WaitMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})
	require.NoError(t, c.WaitMemory(context.Background(), 100))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.WaitMemory(ctx, 1), context.DeadlineExceeded)

	// Larger than the limit never fits.
	assert.ErrorIs(t, c.WaitMemory(context.Background(), 101), ErrMemoryLimitExceeded)

	done := make(chan error, 1)
	go func() { done <- c.WaitMemory(context.Background(), 30) }()

	c.ReleaseMemory(50)
	require.NoError(t, <-done)
	assert.Equal(t, int64(80), c.MemoryUsage())
}

func TestController_Runs(t *testing.T) {
	c := NewController(Config{MaxConcurrentRuns: 2})

	require.NoError(t, c.AcquireRun(context.Background()))
	require.NoError(t, c.AcquireRun(context.Background()))
	assert.Equal(t, int64(2), c.RunsInFlight())

	assert.False(t, c.TryAcquireRun())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireRun(ctx), context.DeadlineExceeded)

	c.ReleaseRun()
	assert.True(t, c.TryAcquireRun())
	assert.Equal(t, int64(2), c.RunsInFlight())
}

func TestController_DefaultsToOneRun(t *testing.T) {
	c := NewController(Config{})

	assert.True(t, c.TryAcquireRun())
	assert.False(t, c.TryAcquireRun())
}

func TestController_NilIsUnlimited(t *testing.T) {
	var c *Controller

	assert.NoError(t, c.AcquireMemory(10))
	assert.NoError(t, c.WaitMemory(context.Background(), 10))
	c.ReleaseMemory(10)
	assert.Zero(t, c.MemoryUsage())
	assert.Zero(t, c.MemoryLimit())

	assert.NoError(t, c.AcquireRun(context.Background()))
	assert.True(t, c.TryAcquireRun())
	c.ReleaseRun()
	assert.Zero(t, c.RunsInFlight())
}

func TestController_ConcurrentMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 1 << 20})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if c.AcquireMemory(64) == nil {
					c.ReleaseMemory(64)
				}
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, c.MemoryUsage())
}
