// SPDX-License-Identifier: MIT

package components

import (
	"sort"

	"github.com/katalvlaran/edgeprep/core"
	"github.com/katalvlaran/edgeprep/dfs"
)

// Find partitions the vertices 0..filter of set into connected components.
// Edges with an endpoint above filter are ignored.
//
// Errors: ErrEdgeSetNil if set is nil; traversal errors from package dfs.
// Complexity: O(filter + E) time, O(filter + E) memory.
func Find(set *core.EdgeSet, filter core.Vertex, opts ...Option) ([]Component, error) {
	if set == nil {
		return nil, ErrEdgeSetNil
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	adj := set.Adjacency()
	if o.strategy == UnionFind {
		return labelUnionFind(adj, filter, o.isolated), nil
	}

	return labelDepthFirst(adj, filter, o.isolated)
}

// FindAll is Find with the filter set to the largest known vertex. An empty
// set yields no components.
func FindAll(set *core.EdgeSet, opts ...Option) ([]Component, error) {
	if set == nil {
		return nil, ErrEdgeSetNil
	}
	top, ok := set.MaxVertex()
	if !ok {
		return nil, nil
	}

	return Find(set, top, opts...)
}

// hasInRangeNeighbor reports whether v has a neighbor not above filter.
func hasInRangeNeighbor(adj core.Adjacency, v, filter core.Vertex) bool {
	for _, nb := range adj[v] {
		if nb <= filter {
			return true
		}
	}

	return false
}

func labelDepthFirst(adj core.Adjacency, filter core.Vertex, isolated IsolatedPolicy) ([]Component, error) {
	visited := make(map[core.Vertex]bool, len(adj))
	inRange := func(nb core.Vertex) bool { return nb <= filter }

	var comps []Component
	for i := uint64(0); i <= uint64(filter); i++ {
		v := core.Vertex(i)
		if visited[v] {
			continue
		}
		if !hasInRangeNeighbor(adj, v, filter) {
			if isolated == IncludeIsolated {
				visited[v] = true
				comps = append(comps, Component{v})
			}
			continue
		}

		res, err := dfs.Walk(adj, v, dfs.WithVisited(visited), dfs.WithFilterNeighbor(inRange))
		if err != nil {
			return nil, err
		}
		comp := Component(res.Order)
		sort.Slice(comp, func(a, b int) bool { return comp[a] < comp[b] })
		comps = append(comps, comp)
	}

	return comps, nil
}
