// SPDX-License-Identifier: MIT
// Package: mentoring-adebayo/builder
//
// impl_dense_random.go - implementation of DenseRandom(n, degree).
//
// Model:
//   - Start from an n×n matrix whose off-diagonal entries all hold the sentinel
//     length and whose diagonal is 0 (no self-loops).
//   - For every row i (ascending), pick degree distinct columns j ≠ i by
//     rejection sampling: a draw is rejected if it hits i or a column already
//     holding a random length. Each accepted column gets a length drawn from
//     [minWeight, maxWeight].
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ degree < n (else ErrBadDegree).
//   - maxWeight < sentinel (else ErrBadWeightRange).
//   - rng non-nil when degree > 0 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) to allocate and fill; expected O(n · degree · n/(n-degree))
//     draws for the rejection sampling.
//   - Space: O(n²).

package builder

import "fmt"

const (
	methodDenseRandom      = "DenseRandom"
	minDenseRandomVertices = 2
)

// DenseRandom returns an n×n weight matrix in which every node has exactly
// degree random outgoing edges and a sentinel-length edge to every other node.
func DenseRandom(n, degree int, opts ...BuilderOption) ([][]float64, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters (fail fast, nothing allocated yet).
	if n < minDenseRandomVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodDenseRandom, n, minDenseRandomVertices, ErrTooFewVertices)
	}
	if degree < 0 || degree >= n {
		return nil, fmt.Errorf("%s: degree=%d not in [0,%d): %w",
			methodDenseRandom, degree, n, ErrBadDegree)
	}
	if float64(cfg.maxWeight) >= cfg.sentinel {
		return nil, fmt.Errorf("%s: maxWeight=%d, sentinel=%g: %w",
			methodDenseRandom, cfg.maxWeight, cfg.sentinel, ErrBadWeightRange)
	}
	if cfg.rng == nil && degree > 0 {
		return nil, fmt.Errorf("%s: %w", methodDenseRandom, ErrNeedRandSource)
	}

	// 2) Fail-safe layer: every ordered pair i≠j is connected by a sentinel edge.
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = cfg.sentinel
			}
		}
	}

	// 3) Random layer: degree distinct cheap edges per row.
	var i, j, added int
	for i = 0; i < n; i++ {
		for added = 0; added < degree; {
			j = cfg.rng.Intn(n)
			if j == i || m[i][j] < cfg.sentinel {
				continue
			}
			m[i][j] = cfg.weight()
			added++
		}
	}

	return m, nil
}
