// SPDX-License-Identifier: MIT

package repair

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/edgeprep/core"
	"github.com/katalvlaran/edgeprep/weights"
)

var (
	// ErrNeedRandSource indicates Stitch was called without a random source.
	ErrNeedRandSource = errors.New("repair: random source is required")

	// ErrEmptyComponent indicates the target component has no vertices.
	ErrEmptyComponent = errors.New("repair: component is empty")

	// ErrUnknownPolicy indicates an unrecognized policy name.
	ErrUnknownPolicy = errors.New("repair: unknown policy")
)

// StitchMinWeight and StitchMaxWeight bound the default stitch weights.
const (
	StitchMinWeight int64 = 1
	StitchMaxWeight int64 = 999
)

// Policy selects how vertices outside the largest component are handled.
type Policy int

const (
	// PolicyDrop discards vertices outside the component together with their edges.
	PolicyDrop Policy = iota
	// PolicyStitch links every vertex outside the component to a random member.
	PolicyStitch
)

// String returns the configuration name of p.
func (p Policy) String() string {
	switch p {
	case PolicyDrop:
		return "drop"
	case PolicyStitch:
		return "stitch"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "drop" or "stitch" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drop":
		return PolicyDrop, nil
	case "stitch":
		return PolicyStitch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Range returns the universe 0..filter.
func Range(filter core.Vertex) []core.Vertex {
	out := make([]core.Vertex, 0, int(filter)+1)
	for i := uint64(0); i <= uint64(filter); i++ {
		out = append(out, core.Vertex(i))
	}

	return out
}

// Option customizes Stitch.
type Option func(*config)

type config struct {
	src      weights.Source
	weightFn weights.WeightFn
}

func defaultConfig() config {
	return config{weightFn: weights.UniformWeightFn(StitchMinWeight, StitchMaxWeight)}
}

// WithRand sets the random source for target and weight draws. Panics on nil.
func WithRand(src weights.Source) Option {
	if src == nil {
		panic("repair: WithRand(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithSeed sets a deterministic random source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = weights.NewSource(seed) }
}

// WithWeightFn overrides the stitch weight generator. Panics on nil.
func WithWeightFn(fn weights.WeightFn) Option {
	if fn == nil {
		panic("repair: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}
