// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for EdgeSet operations.
var (
	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Weight bounds for generated and accepted edge weights.
const (
	// MinWeight is the smallest weight produced by the weight generators.
	MinWeight int64 = 1
	// MaxWeight is the largest weight produced by the weight generators.
	MaxWeight int64 = 1000
	// DefaultWeight is assigned to edges read from unweighted input.
	DefaultWeight int64 = 1
)

// Vertex is a non-negative vertex identifier. It matches the 32-bit vertex
// type used by the binary edge-list format.
type Vertex uint32

// String renders the vertex as its decimal id.
func (v Vertex) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Pair is the canonical key of an undirected edge. U is always less than V.
type Pair struct {
	U, V Vertex
}

// MakePair returns the canonical Pair for endpoints a and b.
// Complexity: O(1).
func MakePair(a, b Vertex) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{U: a, V: b}
}

// Other returns the endpoint of p opposite to v. The result is undefined if v
// is not an endpoint of p.
func (p Pair) Other(v Vertex) Vertex {
	if p.U == v {
		return p.V
	}

	return p.U
}

// Less orders pairs ascending by U, then V.
func (p Pair) Less(q Pair) bool {
	if p.U != q.U {
		return p.U < q.U
	}

	return p.V < q.V
}

// Edge is a weighted undirected edge.
type Edge struct {
	Pair
	Weight int64
}

// EdgeSet is a weighted undirected simple graph keyed by canonical pairs.
//
// weights holds pair → weight; order lists pairs by first insertion, so an
// overwrite keeps its position. vertices holds every known vertex.
type EdgeSet struct {
	weights  map[Pair]int64
	order    []Pair
	vertices map[Vertex]struct{}
}

// NewEdgeSet creates an empty EdgeSet. sizeHint pre-sizes the edge storage;
// pass 0 when unknown.
// Complexity: O(sizeHint) allocation.
func NewEdgeSet(sizeHint int) *EdgeSet {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &EdgeSet{
		weights:  make(map[Pair]int64, sizeHint),
		order:    make([]Pair, 0, sizeHint),
		vertices: make(map[Vertex]struct{}),
	}
}

// Len returns the number of stored edges.
func (s *EdgeSet) Len() int {
	return len(s.order)
}

// Order returns the number of known vertices.
func (s *EdgeSet) Order() int {
	return len(s.vertices)
}
