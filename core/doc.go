// SPDX-License-Identifier: MIT

// Package core defines the Vertex, Pair and Edge types and the EdgeSet
// container shared by every stage of the edge-list pipeline.
//
// An EdgeSet stores an undirected, weighted, simple graph:
//
//   - Edges are keyed by a canonical unordered Pair{U, V} with U < V,
//     so (u,v) and (v,u) always address the same edge.
//   - At most one weight is stored per pair; re-adding a pair overwrites the
//     weight (last write wins) but keeps the pair's first-seen position.
//   - Every endpoint of a stored edge is a known vertex. Isolated vertices
//     may be registered explicitly with AddVertex.
//   - Self-loops are rejected with ErrSelfLoop.
//
// Iteration is deterministic:
//
//	Vertices()  // ascending vertex ids
//	Edges()     // ascending by (U, V)
//	Stream()    // first-seen insertion order, used for renumbering
//
// Adjacency() builds a vertex → sorted-neighbors index once in O(V+E);
// traversals should use it instead of scanning the edge catalog per vertex.
//
// An EdgeSet is owned by a single pipeline run and is not safe for concurrent
// mutation.
package core
