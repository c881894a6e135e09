// Package simd provides the distance kernels used by the clustering hot loop.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection (golang.org/x/sys/cpu) selects the kernel
// width. Set LLOYD_SIMD=generic|neon|sve2|avx2|avx512 to force a choice;
// unavailable choices fall back to auto-detection.
//
// # Operations
//
//   - Distance: SquaredL2
//   - Batch: SquaredL2Batch (one query against K flattened centroids)
package simd
