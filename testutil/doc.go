// Package testutil provides testing utilities for kohonen.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seedable random source that satisfies kohonen.Rand,
// random vector generators, and a brute-force nearest-vector search used as
// ground truth for BMU selection.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.UniformRangeVectors(100, 4, -1, 1) // uniform [-1, 1)
//	blobs := rng.ClusteredVectors(500, 2, 5, 0.05)
//
// # Exact Search (Ground Truth)
//
//	idx, dist := testutil.ClosestIndex(query, vectors)
package testutil
