package dijkstra

import (
	"fmt"
	"math"

	"github.com/oddlyfunctional/mentoring-adebayo/graph"
)

// ShortestPath returns the shortest path from origin to destination in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. origin and destination must be nodes of g (ErrNodeNotFound).
//     A typed nil *graph.ListGraph or *graph.MatrixGraph has no nodes.
//
// If destination cannot be reached, ShortestPath returns ErrNoPath and a
// zero Path. When several paths share the minimum distance, which one is
// returned is unspecified; the distance is always minimal.
//
// Complexity:
//
//   - Time:  O(V²) node selection + one Neighbours call per settled node
//     and one DistanceBetween call per examined edge.
//   - Space: O(V) per call.
func ShortestPath[N comparable](g graph.Graph[N], origin, destination N, opts ...Option) (Path[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Stats != nil {
		*cfg.Stats = Stats{}
	}

	if g == nil {
		return Path[N]{}, ErrNilGraph
	}

	nodes := g.Nodes()
	index := make(map[N]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}
	src, ok := index[origin]
	if !ok {
		return Path[N]{}, fmt.Errorf("origin %v: %w", origin, ErrNodeNotFound)
	}
	dst, ok := index[destination]
	if !ok {
		return Path[N]{}, fmt.Errorf("destination %v: %w", destination, ErrNodeNotFound)
	}

	r := &runner[N]{
		g:         g,
		options:   cfg,
		nodes:     nodes,
		index:     index,
		dist:      make([]float64, len(nodes)),
		prev:      make([]int, len(nodes)),
		visited:   make([]bool, len(nodes)),
		remaining: len(nodes),
		minLength: g.MinLength(),
	}
	r.init(src)

	if !r.process(dst) {
		return Path[N]{}, fmt.Errorf("%v → %v: %w", origin, destination, ErrNoPath)
	}

	return r.path(src, dst), nil
}

// runner holds the state of a single search. Nodes are addressed by their
// position in nodes; index maps a node back to its position.
type runner[N comparable] struct {
	g         graph.Graph[N]
	options   Options
	nodes     []N
	index     map[N]int
	dist      []float64 // tentative distance from the origin, +Inf if unknown
	prev      []int     // previous node on the best known route, -1 if none
	visited   []bool    // settled nodes
	remaining int       // number of unvisited nodes
	minLength float64
}

// init sets every distance to +Inf except the origin's.
func (r *runner[N]) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0
}

// process runs the main loop and reports whether dst was reached.
func (r *runner[N]) process(dst int) bool {
	var (
		cur  int
		j    int
		ok   bool
		w    float64
		cand float64
	)
	for r.remaining > 0 {
		// 1) Select the unvisited node closest to the origin.
		cur = r.closest()
		if cur < 0 {
			// Everything left is unreachable.
			return false
		}

		// 2) Settle it.
		r.visited[cur] = true
		r.remaining--
		if r.options.Stats != nil {
			r.options.Stats.Visited++
		}
		if cur == dst {
			return true
		}

		// 3) Relax its unvisited neighbours.
		for _, nb := range r.g.Neighbours(r.nodes[cur]) {
			if j, ok = r.index[nb]; !ok || r.visited[j] {
				continue
			}
			if w, ok = r.g.DistanceBetween(r.nodes[cur], nb); !ok {
				continue
			}

			cand = r.dist[cur] + w
			if cand < r.dist[j] {
				r.dist[j] = cand
				r.prev[j] = cur
				if r.options.Stats != nil {
					r.options.Stats.Relaxations++
				}
			}

			// Lengths are strictly positive, so nothing still on the frontier
			// can reach dst for less than dist[cur] + minLength.
			if j == dst && r.options.EarlyExit && r.dist[dst] <= r.dist[cur]+r.minLength {
				if r.options.Stats != nil {
					r.options.Stats.EarlyExit = true
				}
				return true
			}
		}
	}

	return false
}

// closest returns the unvisited node with the smallest finite distance,
// the first one in node order on ties, or -1 if there is none.
func (r *runner[N]) closest() int {
	best := -1
	bestDist := math.Inf(1)
	for i, d := range r.dist {
		if r.visited[i] {
			continue
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// path walks previous links back from dst and reverses them.
func (r *runner[N]) path(src, dst int) Path[N] {
	var rev []N
	for cur := dst; ; cur = r.prev[cur] {
		rev = append(rev, r.nodes[cur])
		if cur == src {
			break
		}
	}
	out := make([]N, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}

	return Path[N]{Distance: r.dist[dst], Nodes: out}
}
