// SPDX-License-Identifier: MIT

package edgeio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgeprep/core"
	"github.com/katalvlaran/edgeprep/edgeio"
)

func edge(u, v core.Vertex, w int64) core.Edge {
	return core.Edge{Pair: core.MakePair(u, v), Weight: w}
}

func TestRead_WeightedWithComments(t *testing.T) {
	in := "# FromNodeId  ToNodeId  Weight\n" +
		"0  1  5\n" +
		"\n" +
		"   # inline comment line\n" +
		"1\t2\t7\n" +
		"2 1 7\n"
	set, err := edgeio.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edge(0, 1, 5), edge(1, 2, 7)}, set.Edges())
}

func TestRead_UnweightedDefaultsWeight(t *testing.T) {
	set, err := edgeio.Read(strings.NewReader("0 1\n3 2\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edge(0, 1, core.DefaultWeight), edge(2, 3, core.DefaultWeight)}, set.Edges())
}

func TestRead_SkipHeader(t *testing.T) {
	in := "FromNodeId ToNodeId\n0 1\n"
	_, err := edgeio.Read(strings.NewReader(in))
	assert.ErrorIs(t, err, edgeio.ErrMalformedLine)

	set, err := edgeio.Read(strings.NewReader(in), edgeio.WithSkipHeader())
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
}

func TestRead_MaxVertexFilter(t *testing.T) {
	in := "0 1 5\n1 2 7\n3 4 9\n4 5 2\n9 0 1\n"
	set, err := edgeio.Read(strings.NewReader(in), edgeio.WithMaxVertex(4))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edge(0, 1, 5), edge(1, 2, 7), edge(3, 4, 9)}, set.Edges())
	assert.False(t, set.HasVertex(5))
	assert.False(t, set.HasVertex(9))

	set, err = edgeio.Read(strings.NewReader(in), edgeio.WithMaxVertex(0))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestRead_SelfLoopSkipped(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	set, err := edgeio.Read(strings.NewReader("0 1 5\n2 2 3\n1 2 7\n6 6 1\n"),
		edgeio.WithMaxVertex(4), edgeio.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edge(0, 1, 5), edge(1, 2, 7)}, set.Edges())
	assert.Equal(t, []core.Vertex{0, 1, 2}, set.Vertices())

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "self-loop")

	set, err = edgeio.Read(strings.NewReader("3 3 1\n"), edgeio.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.True(t, set.HasVertex(3))
}

func TestRead_WeightBounds(t *testing.T) {
	set, err := edgeio.Read(strings.NewReader("0 1 1\n1 2 1000\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edge(0, 1, core.MinWeight), edge(1, 2, core.MaxWeight)}, set.Edges())
}

func TestRead_ParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		line  int
		cause error
	}{
		{"too few fields", "0 1 5\n7\n", 2, edgeio.ErrFieldCount},
		{"too many fields", "# h\n0 1 5 6\n", 2, edgeio.ErrFieldCount},
		{"non-integer vertex", "0 1 5\n\n1 x 2\n", 3, nil},
		{"negative vertex", "-1 2 3\n", 1, nil},
		{"non-integer weight", "0 1 2.5\n", 1, nil},
		{"zero weight", "0 1 0\n", 1, edgeio.ErrWeightBounds},
		{"negative weight", "0 1 5\n1 2 -4\n", 2, edgeio.ErrWeightBounds},
		{"huge weight", "0 1 99999999999\n", 1, edgeio.ErrWeightBounds},
		{"weight above max", "0 1 1001\n", 1, edgeio.ErrWeightBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := edgeio.Read(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.ErrorIs(t, err, edgeio.ErrMalformedLine)

			var pe *edgeio.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
			assert.Contains(t, err.Error(), "line")
		})
	}
}
