// SPDX-License-Identifier: MIT

package core

import "sort"

// AddVertex registers v as a known vertex. Adding a known vertex is a no-op.
// Complexity: O(1).
func (s *EdgeSet) AddVertex(v Vertex) {
	s.vertices[v] = struct{}{}
}

// HasVertex reports whether v is known to the set.
// Complexity: O(1).
func (s *EdgeSet) HasVertex(v Vertex) bool {
	_, ok := s.vertices[v]

	return ok
}

// Vertices returns every known vertex in ascending order.
// Complexity: O(V log V).
func (s *EdgeSet) Vertices() []Vertex {
	out := make([]Vertex, 0, len(s.vertices))
	for v := range s.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// MaxVertex returns the largest known vertex and false when the set knows no
// vertices.
// Complexity: O(V).
func (s *EdgeSet) MaxVertex() (Vertex, bool) {
	var (
		top   Vertex
		found bool
	)
	for v := range s.vertices {
		if !found || v > top {
			top, found = v, true
		}
	}

	return top, found
}
