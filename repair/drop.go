// SPDX-License-Identifier: MIT

package repair

import (
	"github.com/katalvlaran/edgeprep/components"
	"github.com/katalvlaran/edgeprep/core"
)

// Drop returns a new set holding the edges of set whose endpoints both belong
// to comp. Every vertex of comp stays known, so a singleton component yields a
// single vertex and no edges.
// Complexity: O(E + |comp|).
func Drop(set *core.EdgeSet, comp components.Component) *core.EdgeSet {
	members := comp.Set()
	out := set.FilterEdges(func(e core.Edge) bool {
		_, u := members[e.U]
		_, v := members[e.V]
		return u && v
	})
	for _, v := range comp {
		out.AddVertex(v)
	}

	return out
}
