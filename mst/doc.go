// SPDX-License-Identifier: MIT

// Package mst computes minimum spanning trees of a core.EdgeSet. It is the
// reference the prepared edge lists are checked against: a repaired graph
// must be connected, and its spanning-tree weight is what the benchmarked
// programs are expected to report.
//
// Kruskal sorts all edges by (weight, pair) and merges a disjoint-set forest.
// Prim grows one tree from a root with a binary heap. On a connected set both
// return a tree of the same total weight; for equal weights the chosen edges
// may differ.
//
// Errors:
//
//   - ErrEdgeSetNil   : the set is nil.
//   - ErrDisconnected : the set has no vertices, or more than one component.
//   - core.ErrVertexNotFound : the Prim root is not a known vertex.
//
// Complexity: Kruskal O(E log E), Prim O(E log V); both O(V + E) memory.
package mst
