// SPDX-License-Identifier: MIT
// Package: mentoring-adebayo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil      (must be seeded for random edges)
//   • minWeight = 1
//   • maxWeight = 100
//   • sentinel  = 999999

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Closed integer range for random edge lengths.
	minWeight int
	maxWeight int
	// Length of every edge the generator did not pick.
	sentinel float64
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 100
	DefaultSentinel  = 999_999.0
)

// newBuilderConfig constructs a config with defaults and applies all
// options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
		sentinel:  DefaultSentinel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one length uniformly from [minWeight, maxWeight].
func (c builderConfig) weight() float64 {
	return float64(c.minWeight + c.rng.Intn(c.maxWeight-c.minWeight+1))
}
