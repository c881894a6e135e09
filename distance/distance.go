package distance

import (
	"math"

	"github.com/hupe1980/lloyd/internal/simd"
)

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
//
// Nearest-centre search only needs the ordering of distances, so the square
// root is never taken on the hot path.
func SquaredL2(a, b []float64) float64 {
	return simd.SquaredL2(a, b)
}

// L2 calculates the Euclidean distance between two vectors.
func L2(a, b []float64) float64 {
	return math.Sqrt(simd.SquaredL2(a, b))
}

// SquaredL2Batch computes the squared L2 distance from point to each of the
// flattened targets (len(targets)/dim vectors) and writes them into out.
func SquaredL2Batch(point []float64, targets []float64, dim int, out []float64) {
	simd.SquaredL2Batch(point, targets, dim, out)
}

// ArgMin returns the lowest index holding the minimum of dists, or -1 if
// dists is empty.
//
// It first min-reduces, then rescans for the first exact match, so ties
// resolve to the lowest index however the reduction was carried out.
// NaN entries never win; an all-NaN input yields 0.
func ArgMin(dists []float64) int {
	if len(dists) == 0 {
		return -1
	}

	minDist := math.Inf(1)
	for _, d := range dists {
		if d < minDist {
			minDist = d
		}
	}

	for i, d := range dists {
		if d == minDist {
			return i
		}
	}

	return 0
}
