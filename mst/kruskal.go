// SPDX-License-Identifier: MIT

package mst

import (
	"sort"

	"github.com/katalvlaran/edgeprep/core"
)

// Kruskal returns a minimum spanning tree of set. Ties in weight are broken
// by the canonical pair, so the result is deterministic.
//
// Errors: ErrEdgeSetNil, ErrDisconnected.
func Kruskal(set *core.EdgeSet) (*Tree, error) {
	if set == nil {
		return nil, ErrEdgeSetNil
	}
	vertices := set.Vertices()
	if len(vertices) == 0 {
		return nil, ErrDisconnected
	}

	edges := set.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[core.Vertex]core.Vertex, len(vertices))
	rank := make(map[core.Vertex]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	find := func(v core.Vertex) core.Vertex {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}
		return v
	}

	tree := &Tree{Edges: make([]core.Edge, 0, len(vertices)-1)}
	for _, e := range edges {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		tree.Edges = append(tree.Edges, e)
		tree.Weight += e.Weight
		if len(tree.Edges) == len(vertices)-1 {
			break
		}
	}

	if len(tree.Edges) < len(vertices)-1 {
		return nil, ErrDisconnected
	}

	return tree, nil
}
