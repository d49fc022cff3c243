// SPDX-License-Identifier: MIT

package core

import "sort"

// Adjacency maps a vertex to its neighbors in ascending order. Isolated known
// vertices map to an empty slice.
type Adjacency map[Vertex][]Vertex

// Adjacency builds the neighbor index of s in one pass over the edges.
// Complexity: O(V + E log d) where d is the largest degree.
func (s *EdgeSet) Adjacency() Adjacency {
	adj := make(Adjacency, len(s.vertices))
	for v := range s.vertices {
		adj[v] = nil
	}
	for _, p := range s.order {
		adj[p.U] = append(adj[p.U], p.V)
		adj[p.V] = append(adj[p.V], p.U)
	}
	for v, nbs := range adj {
		sort.Slice(nbs, func(i, j int) bool { return nbs[i] < nbs[j] })
		adj[v] = nbs
	}

	return adj
}

// Degree returns the number of edges incident to v.
// Complexity: O(1).
func (a Adjacency) Degree(v Vertex) int {
	return len(a[v])
}

// Neighbors returns the sorted neighbors of v.
//
// Errors: ErrVertexNotFound if v is not in the index.
func (a Adjacency) Neighbors(v Vertex) ([]Vertex, error) {
	nbs, ok := a[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return nbs, nil
}
