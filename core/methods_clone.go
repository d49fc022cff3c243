// SPDX-License-Identifier: MIT

package core

// Clone returns a deep copy of s, including isolated vertices and insertion
// order.
// Complexity: O(V + E).
func (s *EdgeSet) Clone() *EdgeSet {
	out := NewEdgeSet(len(s.order))
	for _, p := range s.order {
		out.order = append(out.order, p)
		out.weights[p] = s.weights[p]
	}
	for v := range s.vertices {
		out.vertices[v] = struct{}{}
	}

	return out
}

// Equal reports whether s and other hold the same vertices and the same
// weighted edges. Insertion order is ignored.
// Complexity: O(V + E).
func (s *EdgeSet) Equal(other *EdgeSet) bool {
	if other == nil {
		return false
	}
	if len(s.weights) != len(other.weights) || len(s.vertices) != len(other.vertices) {
		return false
	}
	for p, w := range s.weights {
		ow, ok := other.weights[p]
		if !ok || ow != w {
			return false
		}
	}
	for v := range s.vertices {
		if _, ok := other.vertices[v]; !ok {
			return false
		}
	}

	return true
}
