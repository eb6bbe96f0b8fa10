// SPDX-License-Identifier: MIT
// Package: mentoring-adebayo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • DenseRandom never panics; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the allowed minimum.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrBadDegree indicates an out-degree that is negative or not smaller
// than the number of vertices (no self-loops, no parallel edges).
var ErrBadDegree = errors.New("builder: degree out of range")

// ErrBadWeightRange indicates a weight range that does not fit under the
// sentinel length, so the fail-safe edges would not be the expensive ones.
var ErrBadWeightRange = errors.New("builder: weight range must lie below sentinel")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
