package dijkstra

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that origin or destination is not in the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNoPath indicates that the destination cannot be reached from the origin.
	ErrNoPath = errors.New("dijkstra: no path between origin and destination")
)

// Path is the result of a successful search.
type Path[N comparable] struct {
	// Distance is the sum of edge lengths along Nodes.
	Distance float64

	// Nodes runs from the origin to the destination, both included.
	Nodes []N
}

// Len returns the number of nodes on the path.
func (p Path[N]) Len() int { return len(p.Nodes) }

// Format renders the path as "a → b → c" using label for each node.
func (p Path[N]) Format(label func(N) string) string {
	parts := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		parts[i] = label(n)
	}

	return strings.Join(parts, " → ")
}

// String renders the path with fmt's default formatting of each node.
func (p Path[N]) String() string {
	return p.Format(func(n N) string { return fmt.Sprint(n) })
}

// Stats collects counters from one search. Pass it with WithStats.
type Stats struct {
	// Visited is the number of nodes selected as current.
	Visited int

	// Relaxations is the number of strict distance improvements.
	Relaxations int

	// EarlyExit reports whether the search returned while relaxing the
	// destination rather than when selecting it.
	EarlyExit bool
}

// Options configures a search.
type Options struct {
	EarlyExit bool   // return as soon as the destination is provably settled while relaxing
	Stats     *Stats // optional counters sink
}

// Option is a functional option for ShortestPath.
type Option func(*Options)

// WithoutEarlyExit makes the search return only when the destination is
// selected as the current node.
func WithoutEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = false
	}
}

// WithStats records search counters into s. s is reset at the start of
// every search. Panics on nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic("dijkstra: WithStats(nil)")
	}
	return func(o *Options) {
		o.Stats = s
	}
}

// DefaultOptions returns the options used when none are given:
// early exit enabled, no stats.
func DefaultOptions() Options {
	return Options{EarlyExit: true}
}
