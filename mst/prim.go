// SPDX-License-Identifier: MIT

package mst

import (
	"container/heap"

	"github.com/katalvlaran/edgeprep/core"
)

// Prim returns a minimum spanning tree of set grown from root.
//
// Errors: ErrEdgeSetNil, core.ErrVertexNotFound, ErrDisconnected.
func Prim(set *core.EdgeSet, root core.Vertex) (*Tree, error) {
	if set == nil {
		return nil, ErrEdgeSetNil
	}
	if !set.HasVertex(root) {
		return nil, core.ErrVertexNotFound
	}

	adj := set.Adjacency()
	n := set.Order()
	visited := make(map[core.Vertex]bool, n)
	tree := &Tree{Edges: make([]core.Edge, 0, n-1)}
	pq := &edgeHeap{}

	visit := func(v core.Vertex) {
		visited[v] = true
		for _, nb := range adj[v] {
			if visited[nb] {
				continue
			}
			w, _ := set.Weight(v, nb)
			heap.Push(pq, core.Edge{Pair: core.MakePair(v, nb), Weight: w})
		}
	}

	visit(root)
	for pq.Len() > 0 && len(tree.Edges) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		next := e.V
		if visited[e.V] {
			if visited[e.U] {
				continue
			}
			next = e.U
		}
		tree.Edges = append(tree.Edges, e)
		tree.Weight += e.Weight
		visit(next)
	}

	if len(tree.Edges) < n-1 {
		return nil, ErrDisconnected
	}

	return tree, nil
}

// edgeHeap is a min-heap of edges ordered by weight, then pair.
type edgeHeap []core.Edge

func (h edgeHeap) Len() int { return len(h) }
func (h edgeHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}
	return h[i].Pair.Less(h[j].Pair)
}
func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(core.Edge)) }

func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
