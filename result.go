package lloyd

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Result is the outcome of one clustering run.
type Result struct {
	// K is the requested number of clusters.
	K int

	// Dim is the dimensionality of points and centroids.
	Dim int

	// Assignments holds the cluster id of every point (length N).
	Assignments []int

	// Centroids holds K centroids, flattened (K * Dim).
	Centroids []float64

	// Iterations is the number of assign+update iterations performed.
	// It never exceeds the configured cap.
	Iterations int

	// Converged is true if the last assignment pass moved no point.
	Converged bool

	// Inertia is the sum of squared distances of points to their centroid.
	Inertia float64

	// Workers is the number of parallel lanes used (0 for a backend run).
	Workers int

	// Backend names the backend that produced the result, if any.
	Backend string

	// Labels are the dataset's point labels, if it has any.
	Labels []string

	SeedDuration    time.Duration
	IterateDuration time.Duration
	Elapsed         time.Duration
}

// Centroid returns the coordinates of cluster c, or nil if c is out of range.
func (r *Result) Centroid(c int) []float64 {
	if c < 0 || c >= r.K || len(r.Centroids) < (c+1)*r.Dim {
		return nil
	}
	return r.Centroids[c*r.Dim : (c+1)*r.Dim : (c+1)*r.Dim]
}

// ClusterSizes returns the number of points in each cluster.
func (r *Result) ClusterSizes() []int {
	sizes := make([]int, r.K)
	for _, c := range r.Assignments {
		if c >= 0 && c < r.K {
			sizes[c]++
		}
	}
	return sizes
}

// EmptyClusters returns the ids of clusters that ended the run without points.
// Their centroids are whatever they were when they last held points.
func (r *Result) EmptyClusters() []int {
	if r.Assignments == nil {
		return nil
	}

	var empty []int
	for c, size := range r.ClusterSizes() {
		if size == 0 {
			empty = append(empty, c)
		}
	}
	return empty
}

// Members returns the indices of the points assigned to cluster c.
func (r *Result) Members(c int) *roaring.Bitmap {
	bm := roaring.New()
	for i, id := range r.Assignments {
		if id == c {
			bm.Add(uint32(i)) //nolint:gosec
		}
	}
	return bm
}

// Label returns the label of point i, or "" if the dataset had no labels.
func (r *Result) Label(i int) string {
	if i < 0 || i >= len(r.Labels) {
		return ""
	}
	return r.Labels[i]
}
