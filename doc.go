// SPDX-License-Identifier: MIT

// Package edgeprep prepares edge-list files for graph benchmarks: it sorts,
// weighs, filters and repairs undirected weighted graphs so that the result is
// a single connected component over a dense vertex range.
//
// The work is organized as a linear pipeline:
//
//	edgeio/       text, compressed, archived and binary edge-list readers/writers
//	core/         Vertex, Pair, Edge and the EdgeSet container
//	dfs/          iterative depth-first walk over an adjacency index
//	components/   connected components under a vertex filter, largest selection
//	repair/       drop, stitch and renumber repair policies
//	weights/      seedable weight generators and bulk weight assignment
//	mst/          Kruskal and Prim spanning trees for output verification
//	pipeline/     configuration, logging and the Run entry point
//	cmd/edgeprep  command line front end
//
// Quick example:
//
//	0───1───2     3───4
//
// filtered at 4 with the drop policy keeps only 0─1─2; with the stitch policy
// 3 and 4 are each linked to a random vertex of {0,1,2}.
package edgeprep
