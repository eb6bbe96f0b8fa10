package graph

import (
	"fmt"
	"math"
)

// ListGraph stores a graph as a list of its edges, grouped by source.
//
// Nothing beyond the grouping is indexed: Nodes rescans every edge, and
// Neighbours and DistanceBetween scan the run of edges leaving the node on
// each call. Answers are those of a scan over the flat edge list in
// construction order (first match wins for parallel edges).
//
// Grouping departs from a flat O(E) scan per query on purpose: with 999,000
// edges a flat scan makes one correct search cost around 10^11 steps.
//
// A nil *ListGraph behaves as an empty graph.
type ListGraph[N comparable] struct {
	edges     []Edge[N]       // construction order
	out       map[N][]Edge[N] // edges by source, construction order within each run
	minLength float64
}

// NewListGraph validates edges and returns a graph owning a private copy of them.
// Every length must be finite and strictly positive.
//
// Complexity: O(E).
func NewListGraph[N comparable](edges []Edge[N]) (*ListGraph[N], error) {
	g := &ListGraph[N]{
		edges: make([]Edge[N], len(edges)),
		out:   make(map[N][]Edge[N]),
	}
	for i, e := range edges {
		if math.IsNaN(e.Length) || math.IsInf(e.Length, 0) {
			return nil, fmt.Errorf("edge #%d %s: %w", i, e, ErrNaNLength)
		}
		if e.Length <= 0 {
			return nil, fmt.Errorf("edge #%d %s: %w", i, e, ErrNonPositiveLength)
		}
		if i == 0 || e.Length < g.minLength {
			g.minLength = e.Length
		}
		g.edges[i] = e
		g.out[e.Source] = append(g.out[e.Source], e)
	}

	return g, nil
}

// Nodes returns every source and destination once, in order of first
// appearance in the edge list.
//
// Complexity: O(E).
func (g *ListGraph[N]) Nodes() []N {
	if g == nil {
		return nil
	}
	seen := make(map[N]struct{}, len(g.out))
	out := make([]N, 0, len(g.out))
	add := func(n N) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	for _, e := range g.edges {
		add(e.Source)
		add(e.Destination)
	}

	return out
}

// Neighbours collects the destinations of the edges leaving n.
// Parallel edges yield the destination more than once.
//
// Complexity: O(out-degree of n).
func (g *ListGraph[N]) Neighbours(n N) []N {
	if g == nil {
		return nil
	}
	run := g.out[n]
	if len(run) == 0 {
		return nil
	}
	out := make([]N, len(run))
	for i, e := range run {
		out[i] = e.Destination
	}

	return out
}

// DistanceBetween returns the length of the first edge src→dst.
//
// Complexity: O(out-degree of src).
func (g *ListGraph[N]) DistanceBetween(src, dst N) (float64, bool) {
	if g == nil {
		return 0, false
	}
	for _, e := range g.out[src] {
		if e.Destination == dst {
			return e.Length, true
		}
	}

	return 0, false
}

// MinLength returns the smallest edge length, 0 for an empty graph.
func (g *ListGraph[N]) MinLength() float64 {
	if g == nil {
		return 0
	}

	return g.minLength
}

// EdgeCount returns the number of edges, parallel edges included.
func (g *ListGraph[N]) EdgeCount() int {
	if g == nil {
		return 0
	}

	return len(g.edges)
}

// Edges returns a copy of the edge list in construction order.
func (g *ListGraph[N]) Edges() []Edge[N] {
	if g == nil {
		return nil
	}
	out := make([]Edge[N], len(g.edges))
	copy(out, g.edges)

	return out
}
