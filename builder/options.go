// SPDX-License-Identifier: MIT
// Package: mentoring-adebayo/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before generation begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightRange sets the closed range random edge lengths are drawn from.
// Panics unless 1 ≤ min ≤ max.
func WithWeightRange(min, max int) BuilderOption {
	if min < 1 || max < min {
		panic(fmt.Sprintf("builder: WithWeightRange requires 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(c *builderConfig) {
		c.minWeight, c.maxWeight = min, max
	}
}

// WithSentinel sets the length of the fail-safe edges. Panics if s ≤ 0.
func WithSentinel(s float64) BuilderOption {
	if !(s > 0) {
		panic(fmt.Sprintf("builder: WithSentinel(%g)", s))
	}
	return func(c *builderConfig) {
		c.sentinel = s
	}
}
