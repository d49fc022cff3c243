// SPDX-License-Identifier: MIT

package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgeprep/core"
	"github.com/katalvlaran/edgeprep/dfs"
)

// buildPath creates an undirected path 0-1-...-(n-1).
func buildPath(t testing.TB, n int) core.Adjacency {
	s := core.NewEdgeSet(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, s.AddEdge(core.Vertex(i), core.Vertex(i+1), 1))
	}

	return s.Adjacency()
}

func TestWalk_NilAdjacency(t *testing.T) {
	res, err := dfs.Walk(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrAdjacencyNil)
}

func TestWalk_StartNotFound(t *testing.T) {
	res, err := dfs.Walk(buildPath(t, 3), 9)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestWalk_IsolatedStart(t *testing.T) {
	s := core.NewEdgeSet(0)
	s.AddVertex(4)

	res, err := dfs.Walk(s.Adjacency(), 4)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{4}, res.Order)
}

func TestWalk_StarOrder(t *testing.T) {
	// 0 is the hub of 1,2,3; neighbors are pushed ascending and pop descending.
	s := core.NewEdgeSet(0)
	for _, v := range []core.Vertex{1, 2, 3} {
		require.NoError(t, s.AddEdge(0, v, 1))
	}

	res, err := dfs.Walk(s.Adjacency(), 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{0, 3, 2, 1}, res.Order)
}

func TestWalk_DeepPathNoRecursion(t *testing.T) {
	const n = 200_000
	res, err := dfs.Walk(buildPath(t, n), 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, core.Vertex(n-1), res.Order[n-1])
}

func TestWalk_FilterNeighbor(t *testing.T) {
	adj := buildPath(t, 6)
	res, err := dfs.Walk(adj, 0, dfs.WithFilterNeighbor(func(v core.Vertex) bool { return v <= 3 }))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{0, 1, 2, 3}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestWalk_SharedVisited(t *testing.T) {
	s := core.NewEdgeSet(0)
	require.NoError(t, s.AddEdge(0, 1, 1))
	require.NoError(t, s.AddEdge(2, 3, 1))
	adj := s.Adjacency()

	visited := make(map[core.Vertex]bool)
	first, err := dfs.Walk(adj, 0, dfs.WithVisited(visited))
	require.NoError(t, err)
	assert.ElementsMatch(t, []core.Vertex{0, 1}, first.Order)

	again, err := dfs.Walk(adj, 1, dfs.WithVisited(visited))
	require.NoError(t, err)
	assert.Empty(t, again.Order, "already visited vertices are not reported")

	second, err := dfs.Walk(adj, 2, dfs.WithVisited(visited))
	require.NoError(t, err)
	assert.ElementsMatch(t, []core.Vertex{2, 3}, second.Order)
}

func TestWalk_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	res, err := dfs.Walk(buildPath(t, 5), 0, dfs.WithOnVisit(func(v core.Vertex) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []core.Vertex{0, 1, 2}, res.Order)
}
