// SPDX-License-Identifier: MIT
// Package: socialnet/generator
//
// options.go: functional options for the samplers.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors PANIC on nil inputs; samplers MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed, WithRand or WithSource.

package generator

import (
	"math/rand"
)

// Option customizes sampler behavior by mutating a genConfig before the
// first draw. Later options override earlier ones.
type Option func(*genConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.src = r
	}
}

// WithSource provides any Source implementation, e.g. a scripted source in
// tests. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("generator: WithSource(nil)")
	}
	return func(c *genConfig) {
		c.src = src
	}
}

// WithStrategy selects the sampling strategy. Panics on values other than
// StrategyRejection and StrategyIndex; use ParseStrategy for user input.
func WithStrategy(s Strategy) Option {
	if !s.valid() {
		panic("generator: WithStrategy(unknown)")
	}
	return func(c *genConfig) {
		c.strategy = s
	}
}
