// SPDX-License-Identifier: MIT

package components

import "github.com/katalvlaran/edgeprep/core"

// disjointSet is a union-find forest with path halving and union by size.
type disjointSet struct {
	parent []uint32
	size   []uint32
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]uint32, n), size: make([]uint32, n)}
	for i := range ds.parent {
		ds.parent[i] = uint32(i)
		ds.size[i] = 1
	}

	return ds
}

func (ds *disjointSet) find(x uint32) uint32 {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]] // path halving
		x = ds.parent[x]
	}

	return x
}

func (ds *disjointSet) union(x, y uint32) {
	rx, ry := ds.find(x), ds.find(y)
	if rx == ry {
		return
	}
	if ds.size[rx] < ds.size[ry] {
		rx, ry = ry, rx
	}
	ds.parent[ry] = rx
	ds.size[rx] += ds.size[ry]
}

// labelUnionFind produces the same components, in the same order, as
// labelDepthFirst. Members are collected by an ascending scan, so each
// component is born at its smallest vertex and stays sorted.
func labelUnionFind(adj core.Adjacency, filter core.Vertex, isolated IsolatedPolicy) []Component {
	n := int(filter) + 1
	ds := newDisjointSet(n)
	for v, nbs := range adj {
		if v > filter {
			continue
		}
		for _, nb := range nbs {
			if nb <= filter && nb > v {
				ds.union(uint32(v), uint32(nb))
			}
		}
	}

	slot := make(map[uint32]int)
	var comps []Component
	for i := 0; i < n; i++ {
		v := core.Vertex(i)
		root := ds.find(uint32(i))
		if ds.size[root] == 1 {
			if isolated == IncludeIsolated {
				comps = append(comps, Component{v})
			}
			continue
		}
		idx, ok := slot[root]
		if !ok {
			idx = len(comps)
			slot[root] = idx
			comps = append(comps, nil)
		}
		comps[idx] = append(comps[idx], v)
	}

	return comps
}
