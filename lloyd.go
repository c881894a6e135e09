package lloyd

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/hupe1980/lloyd/backend"
	"github.com/hupe1980/lloyd/dataset"
	"github.com/hupe1980/lloyd/internal/kmeans"
)

// Engine runs k-means clusterings. It holds configuration only; every run
// allocates its own centroids, ids and accumulators, so runs never observe
// each other and an Engine is safe for concurrent use.
type Engine struct {
	opts options
}

// New creates an Engine.
func New(optFns ...Option) *Engine {
	return &Engine{opts: applyOptions(optFns)}
}

// Run partitions ds into k clusters.
//
// If k exceeds the number of points, Run returns a zero-work Result (no
// assignments, no iterations) together with ErrTooFewPoints.
//
// ctx is checked between iterations. A cancelled run returns ctx.Err() and no
// result.
func (e *Engine) Run(ctx context.Context, ds *dataset.Dataset, k int) (*Result, error) {
	logger := e.opts.logger.WithK(k)
	if ds != nil {
		logger = logger.WithDimension(ds.Dimension()).WithCount(ds.Len())
	}

	start := time.Now()
	res, err := e.run(ctx, ds, k, logger)
	duration := time.Since(start)

	iterations, converged := 0, false
	if res != nil {
		iterations, converged = res.Iterations, res.Converged
	}

	e.opts.metricsCollector.RecordRun(k, iterations, converged, duration, err)
	logger.LogRun(ctx, iterations, converged, duration, err)

	return res, err
}

func (e *Engine) run(ctx context.Context, ds *dataset.Dataset, k int, logger *Logger) (*Result, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if k < 1 {
		return nil, ErrInvalidK
	}
	if e.opts.maxIterations < 1 {
		return nil, ErrInvalidMaxIterations
	}

	n, dim := ds.Len(), ds.Dimension()
	if k > n {
		return &Result{K: k, Dim: dim}, ErrTooFewPoints
	}

	rc := e.opts.resources
	if err := rc.AcquireRun(ctx); err != nil {
		return nil, err
	}
	defer rc.ReleaseRun()

	if e.opts.backend != nil {
		return e.runBackend(ctx, ds, k, logger)
	}

	workers := kmeans.Workers(n, e.opts.workers)
	ws := kmeans.WorkingSetBytes(n, dim, k, workers)
	if err := rc.AcquireMemory(ws); err != nil {
		return nil, fmt.Errorf("reserve %d bytes for k=%d: %w", ws, k, err)
	}
	defer rc.ReleaseMemory(ws)

	kr, err := kmeans.Run(ctx, ds.Coords(), dim, kmeans.Config{
		K:             k,
		MaxIterations: e.opts.maxIterations,
		Workers:       workers,
		Rand:          e.source(),
		OnIteration: func(iteration, changed int, elapsed time.Duration) {
			e.opts.metricsCollector.RecordIteration(k, iteration, changed, elapsed)
			logger.LogIteration(ctx, iteration, changed, elapsed)
		},
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &Result{
		K:               k,
		Dim:             dim,
		Assignments:     kr.Assignments,
		Centroids:       kr.Centroids,
		Iterations:      kr.Iterations,
		Converged:       kr.Converged,
		Inertia:         kr.Inertia,
		Workers:         kr.Workers,
		Labels:          ds.Labels(),
		SeedDuration:    kr.SeedDuration,
		IterateDuration: kr.IterateDuration,
		Elapsed:         kr.Elapsed,
	}, nil
}

func (e *Engine) runBackend(ctx context.Context, ds *dataset.Dataset, k int, logger *Logger) (*Result, error) {
	b := e.opts.backend
	n, dim := ds.Len(), ds.Dimension()

	// The backend brings its own accumulators; only the result is ours.
	ws := kmeans.WorkingSetBytes(n, dim, k, 0)
	if err := e.opts.resources.AcquireMemory(ws); err != nil {
		return nil, fmt.Errorf("reserve %d bytes for k=%d: %w", ws, k, err)
	}
	defer e.opts.resources.ReleaseMemory(ws)

	p := &backend.Problem{
		Points:        ds.Coords(),
		N:             n,
		Dim:           dim,
		K:             k,
		MaxIterations: e.opts.maxIterations,
		Seed:          e.backendSeed(),
	}

	start := time.Now()
	sol, err := b.Cluster(ctx, p)
	if err == nil {
		err = backend.Validate(p, sol)
	}
	elapsed := time.Since(start)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		e.opts.metricsCollector.RecordBackendFailure(b.Name(), k)
		logger.LogBackendFailure(ctx, b.Name(), err)
		return nil, &ErrBackendFailure{Backend: b.Name(), K: k, cause: err}
	}

	return &Result{
		K:               k,
		Dim:             dim,
		Assignments:     sol.Assignments,
		Centroids:       sol.Centroids,
		Iterations:      sol.Iterations,
		Converged:       sol.Converged,
		Inertia:         sol.Inertia,
		Backend:         b.Name(),
		Labels:          ds.Labels(),
		IterateDuration: elapsed,
		Elapsed:         elapsed,
	}, nil
}

// source returns the seeding source of one run.
func (e *Engine) source() kmeans.Source {
	if e.opts.randSource != nil {
		return e.opts.randSource
	}
	return rand.New(rand.NewSource(e.opts.seed)) //nolint:gosec
}

func (e *Engine) backendSeed() int64 {
	if e.opts.randSource != nil {
		return int64(e.opts.randSource.Intn(math.MaxInt32))
	}
	return e.opts.seed
}

// SweepEntry is the outcome of one k in a Sweep.
type SweepEntry struct {
	K      int
	Result *Result
	Err    error
}

// Sweep runs one independent clustering per k, in order. A failure for one k
// is recorded in its entry and does not stop the others. Sweep stops early
// only when ctx is done; the remaining entries then carry ctx.Err().
func (e *Engine) Sweep(ctx context.Context, ds *dataset.Dataset, ks []int) []SweepEntry {
	entries := make([]SweepEntry, len(ks))

	for i, k := range ks {
		entries[i].K = k

		if err := ctx.Err(); err != nil {
			entries[i].Err = err
			continue
		}

		entries[i].Result, entries[i].Err = e.Run(ctx, ds, k)
	}

	return entries
}
