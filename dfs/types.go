// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"

	"github.com/katalvlaran/edgeprep/core"
)

var (
	// ErrAdjacencyNil is returned when a nil adjacency index is passed to Walk.
	ErrAdjacencyNil = errors.New("dfs: adjacency is nil")

	// ErrStartVertexNotFound indicates that the start vertex is not in the index.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of Walk.
type Option func(*Options)

// Options holds the configurable parameters of a walk.
type Options struct {
	// Visited marks discovered vertices. Passing the same map to several
	// walks turns them into a forest traversal. Nil means a fresh map.
	Visited map[core.Vertex]bool

	// OnVisit, if non-nil, is invoked when a vertex is discovered.
	// Returning an error aborts the walk with that error.
	OnVisit func(v core.Vertex) error

	// FilterNeighbor, if non-nil, is called for each neighbor before it is
	// pushed. Return false to skip it.
	FilterNeighbor func(v core.Vertex) bool
}

// DefaultOptions returns Options with a fresh visited map, no hook and no filter.
func DefaultOptions() Options {
	return Options{}
}

// WithVisited shares visited across walks. A nil map has no effect.
func WithVisited(visited map[core.Vertex]bool) Option {
	return func(o *Options) {
		if visited != nil {
			o.Visited = visited
		}
	}
}

// WithOnVisit installs fn as the discovery hook.
func WithOnVisit(fn func(v core.Vertex) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithFilterNeighbor installs fn as the neighbor filter.
// If fn(v) == false, v is skipped and counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(v core.Vertex) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of one walk.
type Result struct {
	// Order records vertices in discovery order.
	Order []core.Vertex

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
