// SPDX-License-Identifier: MIT

package mst

import (
	"errors"

	"github.com/katalvlaran/edgeprep/core"
)

var (
	// ErrEdgeSetNil is returned when a nil set is passed.
	ErrEdgeSetNil = errors.New("mst: edge set is nil")

	// ErrDisconnected indicates that no spanning tree covers every vertex.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)

// Tree is a spanning tree: its edges in the order they were chosen and the
// sum of their weights.
type Tree struct {
	Edges  []core.Edge
	Weight int64
}
