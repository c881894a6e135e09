package kmeans

import (
	"context"
	"errors"
	"runtime"
	"time"
)

// Unassigned is the cluster id of a point no pass has assigned yet.
const Unassigned = -1

// minChunk is the smallest point range handed to a worker.
const minChunk = 512

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("kmeans: k must be positive")

	// ErrInvalidMaxIterations is returned when the iteration cap is not positive.
	ErrInvalidMaxIterations = errors.New("kmeans: max iterations must be positive")

	// ErrInvalidInput is returned when coords is empty or not a multiple of dim.
	ErrInvalidInput = errors.New("kmeans: malformed point set")

	// ErrTooFewPoints is returned when k exceeds the number of points, so no
	// k distinct seeds exist.
	ErrTooFewPoints = errors.New("kmeans: fewer points than clusters")
)

// Source supplies seeding randomness. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Config parameterizes a single run.
type Config struct {
	// K is the number of clusters.
	K int

	// MaxIterations caps the number of assign+update iterations.
	MaxIterations int

	// Workers is the number of parallel lanes. If <= 0, GOMAXPROCS is used.
	// The effective count never gives a worker fewer than minChunk points.
	Workers int

	// Rand draws the seed indices.
	Rand Source

	// OnIteration, if set, is called after each iteration with the
	// 1-based iteration number and the number of reassigned points.
	OnIteration func(iteration, changed int, elapsed time.Duration)
}

// Result is the outcome of one run.
type Result struct {
	// Assignments holds the cluster id of every point (length N).
	Assignments []int

	// Centroids holds K centroids, flattened (K * dim).
	Centroids []float64

	// Iterations is the number of iterations performed.
	Iterations int

	// Converged is true if the last assignment pass changed nothing.
	Converged bool

	// Inertia is the sum of squared distances of points to their centroid.
	Inertia float64

	// Workers is the number of lanes the passes used.
	Workers int

	SeedDuration    time.Duration
	IterateDuration time.Duration
	Elapsed         time.Duration
}

// Workers returns the number of lanes used for n points when the caller asks
// for requested lanes.
func Workers(n, requested int) int {
	if requested <= 0 {
		requested = runtime.GOMAXPROCS(0)
	}

	maxLanes := (n + minChunk - 1) / minChunk
	if maxLanes < 1 {
		maxLanes = 1
	}
	if requested > maxLanes {
		requested = maxLanes
	}

	return requested
}

// WorkingSetBytes estimates the memory a run allocates beyond the input:
// assignments, centroids and one partial accumulator per worker.
func WorkingSetBytes(n, dim, k, workers int) int64 {
	const word = 8
	perWorker := int64(k*dim) + 2*int64(k) // sums, counts, distance scratch
	return word * (int64(n) + int64(k*dim) + int64(workers)*perWorker)
}

// Run clusters the n = len(coords)/dim points into cfg.K clusters.
//
// If K exceeds n, Run returns an empty Result and ErrTooFewPoints without
// drawing seeds. ctx is only consulted between iterations; a cancelled run
// returns ctx.Err() and no result.
func Run(ctx context.Context, coords []float64, dim int, cfg Config) (*Result, error) {
	if cfg.K < 1 {
		return nil, ErrInvalidK
	}
	if cfg.MaxIterations < 1 {
		return nil, ErrInvalidMaxIterations
	}
	if dim <= 0 || len(coords) == 0 || len(coords)%dim != 0 {
		return nil, ErrInvalidInput
	}

	n := len(coords) / dim
	if cfg.K > n {
		return &Result{}, ErrTooFewPoints
	}

	start := time.Now()

	seeds, err := Seed(cfg.Rand, n, cfg.K)
	if err != nil {
		return &Result{}, err
	}

	s := newState(coords, dim, cfg.K, Workers(n, cfg.Workers))
	s.seed(seeds)

	seeded := time.Now()

	iter := 0
	converged := false

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		iter++
		iterStart := time.Now()

		changed := s.assign()
		s.update()

		if cfg.OnIteration != nil {
			cfg.OnIteration(iter, changed, time.Since(iterStart))
		}

		if changed == 0 {
			converged = true
			break
		}
		if iter >= cfg.MaxIterations {
			break
		}
	}

	end := time.Now()

	return &Result{
		Assignments:     s.assignments,
		Centroids:       s.centroids,
		Iterations:      iter,
		Converged:       converged,
		Inertia:         s.inertia(),
		Workers:         len(s.lanes),
		SeedDuration:    seeded.Sub(start),
		IterateDuration: end.Sub(seeded),
		Elapsed:         end.Sub(start),
	}, nil
}
