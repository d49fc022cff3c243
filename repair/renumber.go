// SPDX-License-Identifier: MIT

package repair

import (
	"sort"

	"github.com/katalvlaran/edgeprep/components"
	"github.com/katalvlaran/edgeprep/core"
)

// VertexMap is a one-to-one mapping from original vertex ids to dense ids in
// [0, Len()).
type VertexMap struct {
	dense    map[core.Vertex]core.Vertex
	original []core.Vertex
}

func newVertexMap(hint int) *VertexMap {
	return &VertexMap{
		dense:    make(map[core.Vertex]core.Vertex, hint),
		original: make([]core.Vertex, 0, hint),
	}
}

// assign gives v the next dense id unless it already has one.
func (m *VertexMap) assign(v core.Vertex) {
	if _, ok := m.dense[v]; ok {
		return
	}
	m.dense[v] = core.Vertex(len(m.original))
	m.original = append(m.original, v)
}

// Len returns the number of mapped vertices.
func (m *VertexMap) Len() int {
	return len(m.original)
}

// Dense returns the dense id of original vertex v.
func (m *VertexMap) Dense(v core.Vertex) (core.Vertex, bool) {
	d, ok := m.dense[v]

	return d, ok
}

// Original returns the original id of dense vertex d.
func (m *VertexMap) Original(d core.Vertex) (core.Vertex, bool) {
	if int(d) >= len(m.original) {
		return 0, false
	}

	return m.original[d], true
}

// Apply remaps the members of comp to dense ids and returns them sorted.
// Unmapped members are dropped.
func (m *VertexMap) Apply(comp components.Component) components.Component {
	out := make(components.Component, 0, len(comp))
	for _, v := range comp {
		if d, ok := m.dense[v]; ok {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Universe returns the dense range 0..Len()-1.
func (m *VertexMap) Universe() []core.Vertex {
	out := make([]core.Vertex, len(m.original))
	for i := range out {
		out[i] = core.Vertex(i)
	}

	return out
}

// Renumber builds a VertexMap and the remapped copy of set. Dense ids are
// handed out in first-seen order over the edge stream (U, then V of each
// edge), then to universe vertices not seen yet, then to any remaining known
// vertices of set in ascending order.
// Complexity: O(V log V + E).
func Renumber(set *core.EdgeSet, universe []core.Vertex) (*core.EdgeSet, *VertexMap) {
	stream := set.Stream()
	m := newVertexMap(set.Order() + len(universe))
	for _, e := range stream {
		m.assign(e.U)
		m.assign(e.V)
	}
	for _, v := range universe {
		m.assign(v)
	}
	for _, v := range set.Vertices() {
		m.assign(v)
	}

	out := core.NewEdgeSet(len(stream))
	for _, e := range stream {
		// dense ids are distinct for distinct originals, so no self-loop arises
		_ = out.AddEdge(m.dense[e.U], m.dense[e.V], e.Weight)
	}
	for i := range m.original {
		out.AddVertex(core.Vertex(i))
	}

	return out, m
}
