// SPDX-License-Identifier: MIT

package weights

import (
	"errors"
	"math/rand"
)

// ErrNeedRandSource indicates that a stochastic operation was invoked without
// a random source (see WithRand / WithSeed).
var ErrNeedRandSource = errors.New("weights: random source is required")

// Source is the entropy consumed by weight generators and repair policies.
// Intn returns a value in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// WeightFn produces one edge weight from src. It must be deterministic for a
// given source state.
type WeightFn func(src Source) int64

// Option customizes Assign.
type Option func(*config)

type config struct {
	src      Source
	weightFn WeightFn
}

// WithRand sets the random source. Panics on nil.
func WithRand(src Source) Option {
	if src == nil {
		panic("weights: WithRand(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithSeed sets a deterministic random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = NewSource(seed) }
}

// WithWeightFn overrides the weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("weights: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}
