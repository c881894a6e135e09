package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProblem is returned for a Problem whose shape is inconsistent.
	ErrInvalidProblem = errors.New("backend: invalid problem")

	// ErrMalformedSolution is returned for a Solution that does not fit its Problem.
	ErrMalformedSolution = errors.New("backend: malformed solution")
)

// Check reports whether p is internally consistent.
func (p *Problem) Check() error {
	switch {
	case p == nil:
		return fmt.Errorf("%w: nil", ErrInvalidProblem)
	case p.N < 1 || p.Dim < 1:
		return fmt.Errorf("%w: %d points of dimension %d", ErrInvalidProblem, p.N, p.Dim)
	case len(p.Points) != p.N*p.Dim:
		return fmt.Errorf("%w: %d coordinates for %d×%d", ErrInvalidProblem, len(p.Points), p.N, p.Dim)
	case p.K < 1 || p.K > p.N:
		return fmt.Errorf("%w: k=%d for %d points", ErrInvalidProblem, p.K, p.N)
	case p.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations %d", ErrInvalidProblem, p.MaxIterations)
	}
	return nil
}

// Validate checks that s is a well-formed answer to p: one id in [0, K) per
// point, K*Dim centroid coordinates and an iteration count within the cap.
func Validate(p *Problem, s *Solution) error {
	if s == nil {
		return fmt.Errorf("%w: nil", ErrMalformedSolution)
	}
	if len(s.Assignments) != p.N {
		return fmt.Errorf("%w: %d assignments for %d points", ErrMalformedSolution, len(s.Assignments), p.N)
	}
	if len(s.Centroids) != p.K*p.Dim {
		return fmt.Errorf("%w: %d centroid coordinates, want %d", ErrMalformedSolution, len(s.Centroids), p.K*p.Dim)
	}
	if s.Iterations < 0 || s.Iterations > p.MaxIterations {
		return fmt.Errorf("%w: %d iterations, cap %d", ErrMalformedSolution, s.Iterations, p.MaxIterations)
	}
	for i, c := range s.Assignments {
		if c < 0 || c >= p.K {
			return fmt.Errorf("%w: point %d has cluster %d", ErrMalformedSolution, i, c)
		}
	}
	return nil
}
