// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"

	"github.com/katalvlaran/edgeprep/core"
)

// Assign replaces the weight of every edge in set with a freshly generated
// one. Edges are visited in first-seen order. The default generator is
// UniformWeightFn(core.MinWeight, core.MaxWeight).
//
// Errors: ErrNeedRandSource if no source was configured.
// Complexity: O(E).
func Assign(set *core.EdgeSet, opts ...Option) error {
	c := config{weightFn: UniformWeightFn(core.MinWeight, core.MaxWeight)}
	for _, opt := range opts {
		opt(&c)
	}
	if c.src == nil {
		return ErrNeedRandSource
	}

	for _, e := range set.Stream() {
		if err := set.SetWeight(e.U, e.V, c.weightFn(c.src)); err != nil {
			return fmt.Errorf("weights: assign {%d,%d}: %w", e.U, e.V, err)
		}
	}

	return nil
}
