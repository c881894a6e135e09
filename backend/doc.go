// Package backend defines the contract for delegating a clustering run to an
// alternate computation path, such as an accelerator or a remote service.
//
// A Backend receives a self-contained Problem and returns a Solution. The
// engine validates every Solution before trusting it and reports any failure
// as a backend failure for that run only; it never retries and never keeps
// state from a failed run.
//
// Lloyd is the CPU reference implementation. It produces exactly what the
// engine's built-in path produces for the same seed, which makes it useful
// for checking other backends:
//
//	ref, _ := backend.Lloyd{}.Cluster(ctx, p)
//	got, _ := gpu.Cluster(ctx, p)
//	// compare ref.Assignments and got.Assignments
package backend
