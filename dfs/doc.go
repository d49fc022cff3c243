// SPDX-License-Identifier: MIT

// Package dfs implements an iterative depth-first walk over a core.Adjacency.
//
// The walk keeps an explicit stack instead of recursing, so it is safe on
// road-network sized graphs where recursion depth would reach millions of
// frames. Neighbor lookup goes through the precomputed adjacency index, so a
// walk costs O(V + E) rather than a scan of the whole edge catalog per vertex.
//
// Stack discipline: a popped vertex that is already visited is skipped;
// otherwise it is marked, reported to OnVisit, and its unvisited neighbors
// are pushed in ascending order (so they pop in descending order).
//
// Options:
//
//   - WithVisited(m)          share the visited map across walks (forest).
//   - WithOnVisit(fn)         discovery hook; error aborts the walk.
//   - WithFilterNeighbor(fn)  return false to skip a neighbor.
//
// Errors:
//
//   - ErrAdjacencyNil         if adj is nil.
//   - ErrStartVertexNotFound  if start is missing from adj.
//   - any error returned by OnVisit, wrapped.
package dfs
