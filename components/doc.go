// SPDX-License-Identifier: MIT

// Package components partitions the vertices of a core.EdgeSet into connected
// components under a vertex filter and selects the largest one.
//
// Find enumerates candidate vertices 0..filter in ascending order and starts an
// iterative depth-first walk (package dfs) from every vertex not yet visited.
// Neighbors above the filter are never visited. The result is deterministic:
//
//   - each Component is sorted ascending;
//   - components are ordered by their smallest vertex, which is the order in
//     which the enumeration discovers them.
//
// Isolated vertices (no incident edge inside the filter) follow the
// IsolatedPolicy option:
//
//	IncludeIsolated (default) every such vertex in 0..filter is a singleton.
//	SkipIsolated              such vertices belong to no component.
//
// WithStrategy(UnionFind) labels the same components with a disjoint-set
// forest; output is identical to the DFS strategy.
//
// Largest picks the component with the most vertices, ties going to the first
// one in enumeration order. It returns ErrEmptyGraph for an empty list.
//
// Complexity: O(F + E) for F = filter+1 candidate vertices and E edges.
package components
