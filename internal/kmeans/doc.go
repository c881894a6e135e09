// Package kmeans implements Lloyd's k-means iteration over a flat point set.
//
// A run seeds K centroids from distinct random points, then alternates an
// assignment pass (nearest centroid per point) and an update pass (centroid
// = mean of its points) until a pass reassigns nothing or the iteration cap
// is reached. Both passes fan out over contiguous point ranges, one per
// worker; the update pass uses per-worker partial sums merged after the
// barrier.
//
// Used by the root package's Engine and by the CPU reference backend.
package kmeans
