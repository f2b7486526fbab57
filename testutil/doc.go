// Package testutil provides testing utilities for geometry.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that generates random vectors
// for property-based tests.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	a := rng.UniformVec3(-10, 10)  // components uniform in [-10, 10)
//	n := rng.IntVec3(-100, 100)    // integer components in [-100, 100)
//	u := rng.UnitVec3()            // length 1, uniform on the sphere
package testutil
