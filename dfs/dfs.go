// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/edgeprep/core"
)

// Walk performs an iterative depth-first traversal of adj from start and
// returns the discovery order. Vertices already marked in a shared visited
// map are neither reported nor expanded.
//
// Complexity: O(V + E) time, O(V + E) memory for the stack in the worst case.
func Walk(adj core.Adjacency, start core.Vertex, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	if _, ok := adj[start]; !ok {
		return nil, ErrStartVertexNotFound
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Visited == nil {
		o.Visited = make(map[core.Vertex]bool)
	}

	res := &Result{}
	stack := []core.Vertex{start}
	var v core.Vertex
	for len(stack) > 0 {
		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if o.Visited[v] {
			continue
		}
		o.Visited[v] = true
		res.Order = append(res.Order, v)

		if o.OnVisit != nil {
			if err := o.OnVisit(v); err != nil {
				return res, fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
			}
		}

		for _, nb := range adj[v] {
			if o.Visited[nb] {
				continue
			}
			if o.FilterNeighbor != nil && !o.FilterNeighbor(nb) {
				res.SkippedNeighbors++
				continue
			}
			stack = append(stack, nb)
		}
	}

	return res, nil
}
