// SPDX-License-Identifier: MIT

package components

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/edgeprep/core"
)

var (
	// ErrEmptyGraph indicates that no component exists within the filter range.
	ErrEmptyGraph = errors.New("components: no vertices within filter range")

	// ErrEdgeSetNil is returned when a nil *core.EdgeSet is passed to Find.
	ErrEdgeSetNil = errors.New("components: edge set is nil")

	// ErrUnknownPolicy indicates an unrecognized policy or strategy name.
	ErrUnknownPolicy = errors.New("components: unknown policy")
)

// Component is a set of mutually reachable vertices, sorted ascending.
type Component []core.Vertex

// Contains reports whether v belongs to c.
// Complexity: O(log n).
func (c Component) Contains(v core.Vertex) bool {
	i := sort.Search(len(c), func(i int) bool { return c[i] >= v })

	return i < len(c) && c[i] == v
}

// Set returns the members of c as a lookup set.
// Complexity: O(n).
func (c Component) Set() map[core.Vertex]struct{} {
	out := make(map[core.Vertex]struct{}, len(c))
	for _, v := range c {
		out[v] = struct{}{}
	}

	return out
}

// IsolatedPolicy decides whether vertices without in-range edges form
// singleton components.
type IsolatedPolicy int

const (
	// IncludeIsolated makes every edgeless vertex in range a singleton component.
	IncludeIsolated IsolatedPolicy = iota
	// SkipIsolated leaves edgeless vertices out of every component.
	SkipIsolated
)

// String returns the configuration name of p.
func (p IsolatedPolicy) String() string {
	switch p {
	case IncludeIsolated:
		return "include"
	case SkipIsolated:
		return "skip"
	default:
		return fmt.Sprintf("IsolatedPolicy(%d)", int(p))
	}
}

// ParseIsolatedPolicy maps "include" or "skip" (case-insensitive) to a policy.
// The empty string selects IncludeIsolated.
func ParseIsolatedPolicy(s string) (IsolatedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "include":
		return IncludeIsolated, nil
	case "skip":
		return SkipIsolated, nil
	default:
		return 0, fmt.Errorf("%w: isolated policy %q", ErrUnknownPolicy, s)
	}
}

// Strategy selects the labeling algorithm.
type Strategy int

const (
	// DepthFirst labels components with iterative depth-first walks.
	DepthFirst Strategy = iota
	// UnionFind labels components with a disjoint-set forest.
	UnionFind
)

// Option configures Find.
type Option func(*options)

type options struct {
	isolated IsolatedPolicy
	strategy Strategy
}

func defaultOptions() options {
	return options{isolated: IncludeIsolated, strategy: DepthFirst}
}

// WithIsolated sets the isolated-vertex policy.
func WithIsolated(p IsolatedPolicy) Option {
	return func(o *options) { o.isolated = p }
}

// WithStrategy sets the labeling algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}
