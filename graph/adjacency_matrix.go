package graph

import (
	"fmt"
	"math"
	"strconv"
)

// MatrixGraph stores a graph as a dense N×N weight table where
// weights[i][j] > 0 is the length of edge i→j and 0 means no edge.
// Nodes are the bare indices 0..N-1.
//
// The neighbour list of every node is computed once by NewMatrixGraph
// (O(N²)) and never touched again, so Neighbours and DistanceBetween are O(1).
// A nil *MatrixGraph behaves as an empty graph.
type MatrixGraph struct {
	weights    [][]float64
	neighbours [][]int
	minLength  float64
	labels     []string
}

// NewMatrixGraph validates weights and returns a graph owning a private copy.
//
// Errors:
//   - ErrNonSquare if any row length differs from len(weights).
//   - ErrNaNLength if an entry is NaN or ±Inf.
//   - ErrNegativeLength if an entry is negative.
//
// Complexity: O(N²) time and memory.
func NewMatrixGraph(weights [][]float64) (*MatrixGraph, error) {
	n := len(weights)
	g := &MatrixGraph{
		weights:    make([][]float64, n),
		neighbours: make([][]int, n),
	}

	var w float64
	for i, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		g.weights[i] = make([]float64, n)
		copy(g.weights[i], row)

		// Pre-calculate the neighbours of i.
		nbrs := make([]int, 0)
		for j := range row {
			w = row[j]
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("entry [%d][%d]: %w", i, j, ErrNaNLength)
			}
			if w < 0 {
				return nil, fmt.Errorf("entry [%d][%d]=%g: %w", i, j, w, ErrNegativeLength)
			}
			if w == 0 {
				continue
			}
			if g.minLength == 0 || w < g.minLength {
				g.minLength = w
			}
			nbrs = append(nbrs, j)
		}
		g.neighbours[i] = nbrs
	}

	return g, nil
}

// Order returns the number of nodes N.
func (g *MatrixGraph) Order() int {
	if g == nil {
		return 0
	}

	return len(g.weights)
}

// Nodes returns 0..N-1.
func (g *MatrixGraph) Nodes() []int {
	out := make([]int, g.Order())
	for i := range out {
		out[i] = i
	}

	return out
}

// Neighbours returns the cached successors of n in ascending order,
// or nil if n is out of range.
func (g *MatrixGraph) Neighbours(n int) []int {
	if n < 0 || n >= g.Order() {
		return nil
	}

	return g.neighbours[n]
}

// DistanceBetween looks up weights[src][dst]; ok is false for a zero
// entry or an index out of range.
func (g *MatrixGraph) DistanceBetween(src, dst int) (float64, bool) {
	n := g.Order()
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return 0, false
	}
	w := g.weights[src][dst]

	return w, w > 0
}

// MinLength returns the smallest positive entry, 0 when the matrix has none.
func (g *MatrixGraph) MinLength() float64 {
	if g == nil {
		return 0
	}

	return g.minLength
}

// Labelled returns a copy of g that renders node i as labels[i].
// Missing labels fall back to the decimal index.
func (g *MatrixGraph) Labelled(labels []string) *MatrixGraph {
	cp := *g
	cp.labels = make([]string, len(labels))
	copy(cp.labels, labels)

	return &cp
}

// Label returns the display label of node i.
func (g *MatrixGraph) Label(i int) string {
	if g != nil && i >= 0 && i < len(g.labels) && g.labels[i] != "" {
		return g.labels[i]
	}

	return strconv.Itoa(i)
}
