// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"

	"github.com/katalvlaran/edgeprep/core"
)

// DefaultWeightFn always returns core.DefaultWeight.
func DefaultWeightFn(_ Source) int64 {
	return core.DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields w.
// Panics if w < core.MinWeight.
func ConstantWeightFn(w int64) WeightFn {
	if w < core.MinWeight {
		panic(fmt.Sprintf("weights: ConstantWeightFn: w must be ≥ %d, got %d", core.MinWeight, w))
	}

	return func(_ Source) int64 {
		return w
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly from [lo, hi]
// inclusive with a single draw of src.Intn(hi-lo+1).
// Panics if lo < core.MinWeight or hi < lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < core.MinWeight || hi < lo {
		panic(fmt.Sprintf("weights: UniformWeightFn: require %d ≤ lo ≤ hi, got lo=%d, hi=%d", core.MinWeight, lo, hi))
	}
	span := int(hi - lo + 1)

	return func(src Source) int64 {
		return lo + int64(src.Intn(span))
	}
}
