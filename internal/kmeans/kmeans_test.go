package kmeans

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lloyd/testutil"
)

// Four points, two obvious pairs.
var twoPairs = []float64{
	0, 0,
	0, 1,
	10, 0,
	10, 1,
}

func TestRun_TwoPairs(t *testing.T) {
	ctx := context.Background()

	var changes []int
	res, err := Run(ctx, twoPairs, 2, Config{
		K:             2,
		MaxIterations: 10,
		Rand:          testutil.NewSequence(0, 2), // centroids (0,0) and (10,0)
		OnIteration: func(iter, changed int, _ time.Duration) {
			changes = append(changes, changed)
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 1, 1}, res.Assignments)
	assert.Equal(t, []float64{0, 0.5, 10, 0.5}, res.Centroids)
	assert.Equal(t, 2, res.Iterations)
	assert.True(t, res.Converged)
	assert.Equal(t, []int{2, 0}, changes)
	assert.InDelta(t, 1.0, res.Inertia, 1e-12) // four points at 0.5
	assert.Equal(t, 1, res.Workers)
	assert.GreaterOrEqual(t, res.Elapsed, res.SeedDuration)
}

func TestRun_EmptyClusterIsFrozen(t *testing.T) {
	coords := []float64{
		1, 1,
		1, 1,
		1, 1,
	}

	res, err := Run(context.Background(), coords, 2, Config{
		K:             2,
		MaxIterations: 10,
		Rand:          testutil.NewSequence(0, 1),
	})
	require.NoError(t, err)

	// Every point ties and goes to the lower index; cluster 1 never gets one.
	assert.Equal(t, []int{0, 0, 0}, res.Assignments)
	assert.Equal(t, []float64{1, 1}, res.Centroids[2:4])
	assert.Equal(t, 2, res.Iterations)
	assert.True(t, res.Converged)
}

func TestRun_TooFewPoints(t *testing.T) {
	coords := []float64{0, 1, 2}
	src := testutil.NewSequence(0)

	res, err := Run(context.Background(), coords, 1, Config{K: 5, MaxIterations: 10, Rand: src})
	require.ErrorIs(t, err, ErrTooFewPoints)
	require.NotNil(t, res)

	assert.Zero(t, res.Iterations)
	assert.Zero(t, res.Elapsed)
	assert.Nil(t, res.Assignments)
	assert.Nil(t, res.Centroids)
	assert.Zero(t, src.Calls(), "no seed may be drawn")
}

func TestRun_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := Run(ctx, twoPairs, 2, Config{K: 0, MaxIterations: 1})
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = Run(ctx, twoPairs, 2, Config{K: 1, MaxIterations: 0})
	assert.ErrorIs(t, err, ErrInvalidMaxIterations)

	_, err = Run(ctx, []float64{1, 2, 3}, 2, Config{K: 1, MaxIterations: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Run(ctx, nil, 2, Config{K: 1, MaxIterations: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRun_IterationCap(t *testing.T) {
	res, err := Run(context.Background(), twoPairs, 2, Config{
		K:             2,
		MaxIterations: 1,
		Rand:          testutil.NewSequence(0, 2),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.Converged)
}

func TestRun_IterationsNeverExceedCap(t *testing.T) {
	rng := testutil.NewRNG(99)
	coords := rng.UniformPoints(2000, 3)

	for _, maxIter := range []int{1, 2, 3, 5, 8} {
		passes := 0
		res, err := Run(context.Background(), coords, 3, Config{
			K:             16,
			MaxIterations: maxIter,
			Rand:          rand.New(rand.NewSource(int64(maxIter))),
			OnIteration:   func(int, int, time.Duration) { passes++ },
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Iterations, maxIter)
		assert.Equal(t, res.Iterations, passes)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, twoPairs, 2, Config{K: 2, MaxIterations: 10, Rand: testutil.NewSequence(0, 2)})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestRun_Deterministic(t *testing.T) {
	rng := testutil.NewRNG(4711)
	coords, _ := rng.Blobs(5, 400, 4, 20, 1)

	run := func() *Result {
		res, err := Run(context.Background(), coords, 4, Config{
			K:             5,
			MaxIterations: 50,
			Workers:       4,
			Rand:          rand.New(rand.NewSource(10)),
		})
		require.NoError(t, err)
		return res
	}

	a, b := run(), run()
	assert.Equal(t, a.Assignments, b.Assignments)
	assert.Equal(t, a.Centroids, b.Centroids)
	assert.Equal(t, a.Iterations, b.Iterations)
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	rng := testutil.NewRNG(7)
	coords, _ := rng.Blobs(4, 1000, 8, 50, 1)

	run := func(workers int) *Result {
		res, err := Run(context.Background(), coords, 8, Config{
			K:             4,
			MaxIterations: 100,
			Workers:       workers,
			Rand:          testutil.NewSequence(0, 1, 2, 3), // one seed per blob
		})
		require.NoError(t, err)
		return res
	}

	seq := run(1)
	par := run(8)

	require.Equal(t, 1, seq.Workers)
	require.Equal(t, 8, par.Workers)

	assert.Equal(t, seq.Assignments, par.Assignments)
	assert.Equal(t, seq.Iterations, par.Iterations)
	assert.InDeltaSlice(t, seq.Centroids, par.Centroids, 1e-9)
	assert.InDelta(t, seq.Inertia, par.Inertia, 1e-6)
}

func TestRun_AssignmentCompleteness(t *testing.T) {
	rng := testutil.NewRNG(1)
	coords := rng.UniformPoints(3000, 5)

	for _, k := range []int{1, 2, 7, 20} {
		res, err := Run(context.Background(), coords, 5, Config{
			K:             k,
			MaxIterations: 3,
			Workers:       3,
			Rand:          rand.New(rand.NewSource(int64(k))),
		})
		require.NoError(t, err)

		assert.Len(t, res.Centroids, k*5)
		for i, c := range res.Assignments {
			require.True(t, c >= 0 && c < k, "point %d has cluster %d", i, c)
		}
	}
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, 1, Workers(100, 8))
	assert.Equal(t, 8, Workers(5000, 8))
	assert.Equal(t, 2, Workers(1024, 8))
	assert.Equal(t, 1, Workers(0, 4))
	assert.GreaterOrEqual(t, Workers(1<<20, 0), 1)
}

func TestWorkingSetBytes(t *testing.T) {
	// 10 ids + 2*3 centroid words + 2 lanes * (6 sums + 2 counts + 2 dists)
	assert.Equal(t, int64(8*(10+6+2*10)), WorkingSetBytes(10, 3, 2, 2))
}

func BenchmarkRun(b *testing.B) {
	rng := testutil.NewRNG(1)
	coords, _ := rng.Blobs(20, 500, 32, 10, 2)

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for b.Loop() {
				_, err := Run(context.Background(), coords, 32, Config{
					K:             20,
					MaxIterations: 20,
					Workers:       workers,
					Rand:          rand.New(rand.NewSource(10)),
				})
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
