// SPDX-License-Identifier: MIT

package repair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgeprep/components"
	"github.com/katalvlaran/edgeprep/core"
	"github.com/katalvlaran/edgeprep/repair"
	"github.com/katalvlaran/edgeprep/weights"
)

// seqSource replays a fixed sequence of draws, cycling when exhausted.
type seqSource struct {
	vals []int
	next int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.next%len(s.vals)]
	s.next++
	return v % n
}

// sampleSet is the two-island graph 0─1─2  3─4.
func sampleSet(t testing.TB) *core.EdgeSet {
	s := core.NewEdgeSet(0)
	require.NoError(t, s.AddEdge(0, 1, 5))
	require.NoError(t, s.AddEdge(1, 2, 7))
	require.NoError(t, s.AddEdge(3, 4, 9))

	return s
}

func edge(u, v core.Vertex, w int64) core.Edge {
	return core.Edge{Pair: core.MakePair(u, v), Weight: w}
}

func largest(t testing.TB, s *core.EdgeSet, filter core.Vertex) components.Component {
	comps, err := components.Find(s, filter)
	require.NoError(t, err)
	comp, _, err := components.Largest(comps)
	require.NoError(t, err)

	return comp
}

func TestDrop_KeepsLargestComponent(t *testing.T) {
	s := sampleSet(t)
	out := repair.Drop(s, largest(t, s, 4))

	assert.Equal(t, []core.Edge{edge(0, 1, 5), edge(1, 2, 7)}, out.Edges())
	assert.Equal(t, []core.Vertex{0, 1, 2}, out.Vertices())
	assert.Equal(t, 3, s.Len(), "input must not be modified")
}

func TestDrop_Idempotent(t *testing.T) {
	s := sampleSet(t)
	comp := largest(t, s, 4)
	once := repair.Drop(s, comp)
	twice := repair.Drop(once, largest(t, once, 4))
	assert.True(t, once.Equal(twice))
}

func TestDrop_SingletonComponent(t *testing.T) {
	out := repair.Drop(core.NewEdgeSet(0), components.Component{0})
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, []core.Vertex{0}, out.Vertices())
}

func TestStitch_DeterministicSource(t *testing.T) {
	s := sampleSet(t)
	comp := largest(t, s, 4)

	// Per vertex: target draw 1 -> comp[1] == 1, weight draw 41 -> 1+41 == 42.
	src := &seqSource{vals: []int{1, 41}}
	out, added, err := repair.Stitch(s, comp, repair.Range(4), repair.WithRand(src))
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{edge(3, 1, 42), edge(4, 1, 42)}, added)
	assert.Equal(t, []core.Edge{
		edge(0, 1, 5), edge(1, 2, 7), edge(1, 3, 42), edge(1, 4, 42), edge(3, 4, 9),
	}, out.Edges())
	assert.Equal(t, 3, s.Len(), "input must not be modified")
}

func TestStitch_CustomWeightFn(t *testing.T) {
	s := sampleSet(t)
	out, added, err := repair.Stitch(s, largest(t, s, 4), repair.Range(4),
		repair.WithRand(&seqSource{vals: []int{0}}),
		repair.WithWeightFn(weights.ConstantWeightFn(42)))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edge(3, 0, 42), edge(4, 0, 42)}, added)
	assert.Equal(t, 5, out.Len())
}

func TestStitch_EveryVertexCoveredAndConnected(t *testing.T) {
	s := core.NewEdgeSet(0)
	require.NoError(t, s.AddEdge(0, 1, 3))
	require.NoError(t, s.AddEdge(1, 2, 3))
	require.NoError(t, s.AddEdge(2, 3, 3))
	require.NoError(t, s.AddEdge(5, 6, 3))
	require.NoError(t, s.AddEdge(8, 9, 3))
	const filter = 11

	comp := largest(t, s, filter)
	out, added, err := repair.Stitch(s, comp, repair.Range(filter), repair.WithSeed(99))
	require.NoError(t, err)
	assert.Len(t, added, filter+1-len(comp))

	adj := out.Adjacency()
	for _, v := range repair.Range(filter) {
		assert.Positive(t, adj.Degree(v), "vertex %d has no edge", v)
	}
	for _, e := range added {
		assert.GreaterOrEqual(t, e.Weight, repair.StitchMinWeight)
		assert.LessOrEqual(t, e.Weight, repair.StitchMaxWeight)
	}

	comps, err := components.Find(out, filter)
	require.NoError(t, err)
	assert.Len(t, comps, 1, "stitched graph must need no further repair")
}

func TestStitch_Errors(t *testing.T) {
	s := sampleSet(t)
	_, _, err := repair.Stitch(s, components.Component{0, 1, 2}, repair.Range(4))
	assert.ErrorIs(t, err, repair.ErrNeedRandSource)

	_, _, err = repair.Stitch(s, nil, repair.Range(4), repair.WithSeed(1))
	assert.ErrorIs(t, err, repair.ErrEmptyComponent)

	assert.Panics(t, func() { repair.WithRand(nil) })
	assert.Panics(t, func() { repair.WithWeightFn(nil) })
}

func TestRenumber_FirstSeenOrder(t *testing.T) {
	s := core.NewEdgeSet(0)
	require.NoError(t, s.AddEdge(10, 4, 1)) // stream pair {4,10}
	require.NoError(t, s.AddEdge(7, 10, 2)) // stream pair {7,10}
	s.AddVertex(30)

	out, m := repair.Renumber(s, []core.Vertex{4, 20})
	require.Equal(t, 5, m.Len())

	for orig, dense := range map[core.Vertex]core.Vertex{4: 0, 10: 1, 7: 2, 20: 3, 30: 4} {
		d, ok := m.Dense(orig)
		require.True(t, ok)
		assert.Equal(t, dense, d, "dense id of %d", orig)
		o, ok := m.Original(dense)
		require.True(t, ok)
		assert.Equal(t, orig, o)
	}
	_, ok := m.Original(5)
	assert.False(t, ok)

	assert.Equal(t, []core.Edge{edge(0, 1, 1), edge(1, 2, 2)}, out.Edges())
	assert.Equal(t, []core.Vertex{0, 1, 2, 3, 4}, out.Vertices())
	assert.Equal(t, components.Component{0, 1, 2}, m.Apply(components.Component{4, 7, 10}))
	assert.Equal(t, []core.Vertex{0, 1, 2, 3, 4}, m.Universe())
}

func TestRenumber_ThenStitchIsDense(t *testing.T) {
	s := core.NewEdgeSet(0)
	require.NoError(t, s.AddEdge(100, 200, 4))
	require.NoError(t, s.AddEdge(200, 300, 4))
	require.NoError(t, s.AddEdge(400, 500, 4))

	comp := largest(t, s, 500)
	dense, m := repair.Renumber(s, s.Vertices())
	out, _, err := repair.Stitch(dense, m.Apply(comp), m.Universe(), repair.WithSeed(5))
	require.NoError(t, err)

	assert.Equal(t, []core.Vertex{0, 1, 2, 3, 4}, out.Vertices())
	comps, err := components.Find(out, core.Vertex(m.Len()-1))
	require.NoError(t, err)
	assert.Len(t, comps, 1)
}

func TestParsePolicy(t *testing.T) {
	p, err := repair.ParsePolicy("Stitch")
	require.NoError(t, err)
	assert.Equal(t, repair.PolicyStitch, p)
	assert.Equal(t, "drop", repair.PolicyDrop.String())

	_, err = repair.ParsePolicy("prune")
	assert.ErrorIs(t, err, repair.ErrUnknownPolicy)
}
