// SPDX-License-Identifier: MIT

package core

import "sort"

// AddEdge stores the undirected edge {a, b} with weight w and registers both
// endpoints. Re-adding an existing pair overwrites its weight but keeps the
// position recorded on first insertion.
//
// Errors: ErrSelfLoop if a == b.
// Complexity: O(1) amortized.
func (s *EdgeSet) AddEdge(a, b Vertex, w int64) error {
	if a == b {
		return ErrSelfLoop
	}

	p := MakePair(a, b)
	if _, ok := s.weights[p]; !ok {
		s.order = append(s.order, p)
	}
	s.weights[p] = w
	s.vertices[a] = struct{}{}
	s.vertices[b] = struct{}{}

	return nil
}

// HasEdge reports whether the undirected edge {a, b} is stored.
// Complexity: O(1).
func (s *EdgeSet) HasEdge(a, b Vertex) bool {
	_, ok := s.weights[MakePair(a, b)]

	return ok
}

// Weight returns the weight of {a, b}.
//
// Errors: ErrEdgeNotFound if the edge is not stored.
// Complexity: O(1).
func (s *EdgeSet) Weight(a, b Vertex) (int64, error) {
	w, ok := s.weights[MakePair(a, b)]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// SetWeight overwrites the weight of an existing edge.
//
// Errors: ErrEdgeNotFound if the edge is not stored.
// Complexity: O(1).
func (s *EdgeSet) SetWeight(a, b Vertex, w int64) error {
	p := MakePair(a, b)
	if _, ok := s.weights[p]; !ok {
		return ErrEdgeNotFound
	}
	s.weights[p] = w

	return nil
}

// Edges returns every edge sorted ascending by (U, V).
// Complexity: O(E log E).
func (s *EdgeSet) Edges() []Edge {
	out := s.Stream()
	sort.Slice(out, func(i, j int) bool { return out[i].Pair.Less(out[j].Pair) })

	return out
}

// Stream returns every edge in first-seen insertion order.
// Complexity: O(E).
func (s *EdgeSet) Stream() []Edge {
	out := make([]Edge, len(s.order))
	for i, p := range s.order {
		out[i] = Edge{Pair: p, Weight: s.weights[p]}
	}

	return out
}

// FilterEdges returns a new set holding the edges for which keep returns true,
// in their original insertion order. Only endpoints of kept edges are known
// vertices in the result.
// Complexity: O(E).
func (s *EdgeSet) FilterEdges(keep func(e Edge) bool) *EdgeSet {
	out := NewEdgeSet(0)
	for _, p := range s.order {
		e := Edge{Pair: p, Weight: s.weights[p]}
		if keep(e) {
			_ = out.AddEdge(p.U, p.V, e.Weight)
		}
	}

	return out
}
