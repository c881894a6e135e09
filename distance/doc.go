// Package distance provides vector distance calculations for the clustering
// engine.
//
// All functions operate on float64 coordinates and dispatch to the kernel
// set selected at startup by internal/simd.
//
// # Usage
//
//	d := distance.SquaredL2(a, b)
//	distance.SquaredL2Batch(point, centroids, dim, out) // out[c] = |point - centroid c|^2
package distance
