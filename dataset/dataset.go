// Package dataset holds the point set a clustering run works on.
//
// Points are stored column-friendly: one flat row-major coordinate slice
// (N x D) plus an optional parallel label slice. A point is identified by its
// index; there is no per-point object.
package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a dataset would contain no points.
	ErrEmpty = errors.New("dataset: no points")

	// ErrInvalidDimension is returned when the dimension is not positive.
	ErrInvalidDimension = errors.New("dataset: dimension must be positive")
)

// ErrDimensionMismatch indicates that coordinates do not fit the dimension.
type ErrDimensionMismatch struct {
	// Index is the offending row, or -1 when the flat length is wrong.
	Index    int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("dataset: coordinate count %d is not a multiple of dimension %d", e.Actual, e.Expected)
	}
	return fmt.Sprintf("dataset: point %d has dimension %d, expected %d", e.Index, e.Actual, e.Expected)
}

// ErrLabelCount indicates that labels were given but not one per point.
type ErrLabelCount struct {
	Points int
	Labels int
}

func (e *ErrLabelCount) Error() string {
	return fmt.Sprintf("dataset: %d labels for %d points", e.Labels, e.Points)
}

// Dataset is an immutable set of N points in D dimensions.
type Dataset struct {
	n      int
	dim    int
	coords []float64
	labels []string
}

// New wraps a flat row-major coordinate slice. The slice is not copied and
// must not be modified while the dataset is in use. labels may be nil.
func New(dim int, coords []float64, labels []string) (*Dataset, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	if len(coords) == 0 {
		return nil, ErrEmpty
	}
	if len(coords)%dim != 0 {
		return nil, &ErrDimensionMismatch{Index: -1, Expected: dim, Actual: len(coords)}
	}

	n := len(coords) / dim
	if labels != nil && len(labels) != n {
		return nil, &ErrLabelCount{Points: n, Labels: len(labels)}
	}

	return &Dataset{
		n:      n,
		dim:    dim,
		coords: coords,
		labels: labels,
	}, nil
}

// FromRows copies one coordinate slice per point into a new dataset.
// The dimension is taken from the first row.
func FromRows(rows [][]float64, labels []string) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	dim := len(rows[0])
	if dim == 0 {
		return nil, ErrInvalidDimension
	}

	coords := make([]float64, 0, len(rows)*dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, &ErrDimensionMismatch{Index: i, Expected: dim, Actual: len(row)}
		}
		coords = append(coords, row...)
	}

	return New(dim, coords, labels)
}

// Len returns the number of points.
func (d *Dataset) Len() int { return d.n }

// Dimension returns the number of coordinates per point.
func (d *Dataset) Dimension() int { return d.dim }

// Coords returns the flat N x D coordinate slice. Callers must not modify it.
func (d *Dataset) Coords() []float64 { return d.coords }

// Point returns a view of the i-th point's coordinates.
func (d *Dataset) Point(i int) []float64 {
	start := i * d.dim
	return d.coords[start : start+d.dim : start+d.dim]
}

// HasLabels reports whether the dataset carries point labels.
func (d *Dataset) HasLabels() bool { return d.labels != nil }

// Labels returns the label slice, or nil.
func (d *Dataset) Labels() []string { return d.labels }

// Label returns the i-th point's label, or "" when the dataset is unlabeled
// or i is out of range.
func (d *Dataset) Label(i int) string {
	if i < 0 || i >= len(d.labels) {
		return ""
	}
	return d.labels[i]
}
