// Package testutil provides testing utilities for lloyd.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic random sources and synthetic point sets.
//
// # Random Points
//
//	rng := testutil.NewRNG(seed)
//	coords := rng.UniformPoints(1000, 8)             // flat 1000 x 8, values in [0, 1)
//	coords, truth := rng.Blobs(4, 250, 8, 100, 0.5)  // 4 separated blobs
//
// # Scripted Seeding
//
//	src := testutil.NewSequence(0, 2) // Intn returns 0, then 2, then 0, ...
package testutil
