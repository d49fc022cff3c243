// SPDX-License-Identifier: MIT

package repair

import (
	"fmt"

	"github.com/katalvlaran/edgeprep/components"
	"github.com/katalvlaran/edgeprep/core"
)

// Stitch returns a copy of set in which every vertex of universe outside comp
// is linked to comp by exactly one new edge. Universe vertices are processed in
// the given order; for each one the target comp[src.Intn(len(comp))] is drawn
// first, then the weight.
//
// The new edges join distinct components to comp, so they never collide with
// stored edges, and the result is connected over comp ∪ universe.
//
// Errors: ErrNeedRandSource, ErrEmptyComponent.
// Complexity: O(V + E + |universe| log |comp|).
func Stitch(set *core.EdgeSet, comp components.Component, universe []core.Vertex, opts ...Option) (*core.EdgeSet, []core.Edge, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.src == nil {
		return nil, nil, ErrNeedRandSource
	}
	if len(comp) == 0 {
		return nil, nil, ErrEmptyComponent
	}

	out := set.Clone()
	var added []core.Edge
	for _, v := range universe {
		out.AddVertex(v)
		if comp.Contains(v) {
			continue
		}
		target := comp[c.src.Intn(len(comp))]
		w := c.weightFn(c.src)
		if err := out.AddEdge(v, target, w); err != nil {
			return nil, nil, fmt.Errorf("repair: stitch %d to %d: %w", v, target, err)
		}
		added = append(added, core.Edge{Pair: core.MakePair(v, target), Weight: w})
	}

	return out, added, nil
}
