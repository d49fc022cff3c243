// SPDX-License-Identifier: MIT

// Package weights provides seedable integer weight generators and bulk weight
// assignment for edge sets.
//
// Determinism is explicit: every generator draws from a caller-supplied
// Source (a *rand.Rand satisfies it), and Assign visits edges in first-seen
// order, so the same seed over the same input always yields the same weights.
//
// Generators:
//
//	DefaultWeightFn         constant core.DefaultWeight
//	ConstantWeightFn(w)     constant w
//	UniformWeightFn(lo, hi) uniform integer in [lo, hi]
//
// Option constructors panic on meaningless values (nil source, inverted
// range); Assign itself only returns errors.
package weights
