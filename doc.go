// Package lloyd provides a data-parallel k-means clustering engine for Go.
//
// Given N points in D dimensions, an Engine partitions them into K clusters
// with Lloyd's algorithm: pick K distinct points as the initial centroids,
// then alternate an assignment pass (every point moves to its nearest
// centroid) and an update pass (every centroid moves to the mean of its
// points) until no point changes cluster or the iteration cap is reached.
// Both passes are spread over a fork-join pool of workers, each owning a
// contiguous range of points.
//
// # Quick Start
//
//	ds, _ := dataset.FromRows([][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}, nil)
//
//	eng := lloyd.New(lloyd.WithSeed(10), lloyd.WithMaxIterations(50))
//	res, err := eng.Run(ctx, ds, 2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Assignments, res.Iterations, res.Converged)
//
// # Determinism
//
// Seeding is the only source of randomness. With WithSeed every run draws
// from a fresh source, so the same data, k and seed always give the same
// clustering, whatever the worker count. Distance ties go to the lowest
// cluster id and partial sums are merged in a fixed order.
//
// # Empty Clusters
//
// A cluster that loses all its points keeps its last centroid and is not
// re-seeded. Result.EmptyClusters reports such clusters.
//
// # Backends
//
// WithBackend hands whole runs to a backend.Backend, for example an
// accelerator binding. Any backend error or malformed solution fails that
// run with *ErrBackendFailure; the engine keeps no state from it.
//
// # Observability
//
// Runs report to a MetricsCollector (see the promcollector package for
// Prometheus) and log through a slog-based Logger. Both default to no-ops.
package lloyd
