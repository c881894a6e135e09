package backend

import (
	"context"
)

// Problem is a complete, self-contained clustering request.
type Problem struct {
	// Points holds N points of Dim coordinates each, row-major.
	Points []float64

	N   int
	Dim int
	K   int

	// MaxIterations caps the number of assign+update iterations.
	MaxIterations int

	// Seed initializes the backend's seeding randomness.
	Seed int64
}

// Solution is what a backend hands back for a Problem.
type Solution struct {
	// Assignments holds a cluster id in [0, K) for every point.
	Assignments []int

	// Centroids holds K centroids, flattened (K * Dim).
	Centroids []float64

	Iterations int
	Converged  bool
	Inertia    float64
}

// Backend computes a clustering outside the engine's own worker pool.
type Backend interface {
	// Name identifies the backend in errors, logs and metrics.
	Name() string

	// Cluster solves p. Implementations must not retain p.Points.
	Cluster(ctx context.Context, p *Problem) (*Solution, error)
}

// Func adapts a plain function to the Backend interface.
type Func struct {
	Label string
	Fn    func(ctx context.Context, p *Problem) (*Solution, error)
}

// Name implements Backend.
func (f Func) Name() string {
	if f.Label == "" {
		return "func"
	}
	return f.Label
}

// Cluster implements Backend.
func (f Func) Cluster(ctx context.Context, p *Problem) (*Solution, error) {
	if f.Fn == nil {
		return nil, &StatusError{Backend: f.Name(), Status: StatusNoSuchDevice}
	}
	return f.Fn(ctx, p)
}
