// SPDX-License-Identifier: MIT
// Package: mentoring-adebayo/builder
//
// Package builder generates synthetic weight matrices for benchmarking the
// shortest-path search.
//
// The main constructor is DenseRandom(n, degree, opts...): every node gets
// exactly degree outgoing edges to distinct random other nodes with integer
// lengths drawn uniformly from a closed range, and every remaining
// off-diagonal entry is set to a large sentinel length. The sentinel keeps
// every pair of nodes connected, so a search never has to handle "no path"
// on a generated graph, while the random edges stay far cheaper.
//
// Options follow the functional-options pattern:
//
//   - WithSeed / WithRand:  RNG source (required when degree > 0).
//   - WithWeightRange:      closed integer range for random lengths (default [1,100]).
//   - WithSentinel:         length of the fail-safe edges (default 999999).
//
// Option constructors panic on meaningless input; DenseRandom itself only
// returns sentinel errors (see errors.go).
//
// Determinism: for a fixed seed and options the output is identical across
// runs, because rows are filled in ascending order and every draw comes from
// the one configured RNG.
package builder
