// Package graph defines the read-only contract shared by every graph
// representation the shortest-path search runs against, and two
// implementations of it:
//
//	ListGraph   - adjacency list kept as edges grouped by source; nodes,
//	              neighbours and weights are derived on demand by scanning.
//	MatrixGraph - dense N×N weight table; neighbours are cached once at
//	              construction, weights are direct lookups (O(1)).
//
// Both are immutable after construction, so any number of searches may
// run over the same value, concurrently or one after another.
//
// Errors:
//
//	ErrNonPositiveLength - an edge length is zero or negative.
//	ErrNegativeLength    - a matrix entry is negative.
//	ErrNaNLength         - a length is NaN or ±Inf.
//	ErrNonSquare         - matrix rows differ in length from the row count.
//	ErrUnknownNode       - a conversion referenced a node outside its index.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and conversion.
var (
	// ErrNonPositiveLength indicates an edge whose length is not strictly positive.
	ErrNonPositiveLength = errors.New("graph: edge length must be positive")

	// ErrNegativeLength indicates a negative matrix entry (0 means "no edge").
	ErrNegativeLength = errors.New("graph: negative matrix entry")

	// ErrNaNLength indicates a NaN or infinite length.
	ErrNaNLength = errors.New("graph: NaN or Inf length")

	// ErrNonSquare indicates a weight matrix that is not N×N.
	ErrNonSquare = errors.New("graph: matrix is not square")

	// ErrUnknownNode indicates a node that has no index in a conversion.
	ErrUnknownNode = errors.New("graph: unknown node")
)

// Graph is the capability set a shortest-path search needs.
//
// Implementations must be safe for concurrent readers and must not keep any
// per-search state.
type Graph[N comparable] interface {
	// Nodes returns every distinct node once, in a deterministic order.
	Nodes() []N

	// Neighbours returns the nodes reachable from n by one outgoing edge.
	// The returned slice must not be modified by the caller.
	Neighbours(n N) []N

	// DistanceBetween returns the length of the edge src→dst and whether
	// such an edge exists.
	DistanceBetween(src, dst N) (float64, bool)

	// MinLength returns the smallest edge length in the graph, or 0 if the
	// graph has no edges.
	MinLength() float64
}

// Edge is a directed, weighted connection from Source to Destination.
type Edge[N comparable] struct {
	Source      N
	Destination N
	Length      float64
}

// String renders the edge as "src→dst(len)".
func (e Edge[N]) String() string {
	return fmt.Sprintf("%v→%v(%g)", e.Source, e.Destination, e.Length)
}
