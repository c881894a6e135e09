package backend

import (
	"context"
	"errors"
	"math/rand"

	"github.com/hupe1980/lloyd/internal/kmeans"
)

// Lloyd is the CPU reference backend. It runs the same algorithm as the
// engine's built-in path, seeded from Problem.Seed.
type Lloyd struct {
	// Workers is the number of parallel lanes; <= 0 means GOMAXPROCS.
	Workers int
}

// Name implements Backend.
func (Lloyd) Name() string { return "lloyd-cpu" }

// Cluster implements Backend.
func (b Lloyd) Cluster(ctx context.Context, p *Problem) (*Solution, error) {
	if err := p.Check(); err != nil {
		return nil, &StatusError{Backend: b.Name(), Status: StatusInvalidArguments, Err: err}
	}

	res, err := kmeans.Run(ctx, p.Points, p.Dim, kmeans.Config{
		K:             p.K,
		MaxIterations: p.MaxIterations,
		Workers:       b.Workers,
		Rand:          rand.New(rand.NewSource(p.Seed)), //nolint:gosec
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, &StatusError{Backend: b.Name(), Status: StatusRuntimeError, Err: err}
	}

	return &Solution{
		Assignments: res.Assignments,
		Centroids:   res.Centroids,
		Iterations:  res.Iterations,
		Converged:   res.Converged,
		Inertia:     res.Inertia,
	}, nil
}
