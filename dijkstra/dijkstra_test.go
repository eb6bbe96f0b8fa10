// Package dijkstra_test contains unit tests for ShortestPath. They cover
// validation, the worked city example on both representations, the early
// exit, unreachable destinations, repeated and concurrent searches, and an
// exhaustive cross-check on small random graphs.
package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oddlyfunctional/mentoring-adebayo/dijkstra"
	"github.com/oddlyfunctional/mentoring-adebayo/graph"
)

// ------------------------------------------------------------------------
// Fixtures and helpers.
// ------------------------------------------------------------------------

// usaEdges is the city network of the worked example.
var usaEdges = []graph.Edge[string]{
	{Source: "new_york", Destination: "brooklyn", Length: 1},
	{Source: "new_york", Destination: "queens", Length: 1},
	{Source: "new_york", Destination: "chicago", Length: 2},
	{Source: "queens", Destination: "chicago", Length: 1},
	{Source: "brooklyn", Destination: "chicago", Length: 1},
	{Source: "brooklyn", Destination: "queens", Length: 1},
	{Source: "chicago", Destination: "atlanta", Length: 3},
	{Source: "chicago", Destination: "denver", Length: 2},
	{Source: "atlanta", Destination: "denver", Length: 1},
	{Source: "denver", Destination: "san_diego", Length: 3},
	{Source: "denver", Destination: "washington", Length: 4},
	{Source: "san_diego", Destination: "los_angeles", Length: 4},
	{Source: "washington", Destination: "los_angeles", Length: 3},
}

// usaLabels gives the matrix index of each city in usaMatrix.
var usaLabels = []string{
	"new_york", "brooklyn", "queens", "chicago", "atlanta",
	"denver", "san_diego", "washington", "los_angeles",
}

// usaMatrix is the same network as usaEdges laid out by usaLabels.
func usaMatrix(t testing.TB) *graph.MatrixGraph {
	t.Helper()
	index := make(map[string]int, len(usaLabels))
	for i, l := range usaLabels {
		index[l] = i
	}
	m, err := graph.MatrixFromEdges(usaEdges, func(s string) int { return index[s] }, len(usaLabels))
	require.NoError(t, err)
	g, err := graph.NewMatrixGraph(m)
	require.NoError(t, err)

	return g.Labelled(usaLabels)
}

func usaList(t testing.TB) *graph.ListGraph[string] {
	t.Helper()
	g, err := graph.NewListGraph(usaEdges)
	require.NoError(t, err)

	return g
}

// requireValidWalk checks that p starts at origin, ends at destination,
// follows existing edges, and that its lengths sum to p.Distance.
func requireValidWalk[N comparable](t *testing.T, g graph.Graph[N], p dijkstra.Path[N], origin, destination N) {
	t.Helper()
	require.NotEmpty(t, p.Nodes)
	require.Equal(t, origin, p.Nodes[0])
	require.Equal(t, destination, p.Nodes[len(p.Nodes)-1])

	sum := 0.0
	for i := 1; i < len(p.Nodes); i++ {
		w, ok := g.DistanceBetween(p.Nodes[i-1], p.Nodes[i])
		require.True(t, ok, "no edge %v→%v on returned path", p.Nodes[i-1], p.Nodes[i])
		sum += w
	}
	require.InDelta(t, p.Distance, sum, 1e-9)
}

// bruteForce returns the shortest distance over all simple paths from
// src to dst, +Inf if there is none.
func bruteForce[N comparable](g graph.Graph[N], src, dst N) float64 {
	best := math.Inf(1)
	onPath := map[N]bool{src: true}
	var walk func(cur N, acc float64)
	walk = func(cur N, acc float64) {
		if cur == dst {
			best = math.Min(best, acc)
			return
		}
		for _, nb := range g.Neighbours(cur) {
			if onPath[nb] {
				continue
			}
			w, _ := g.DistanceBetween(cur, nb)
			onPath[nb] = true
			walk(nb, acc+w)
			onPath[nb] = false
		}
	}
	walk(src, 0)

	return best
}

// randomMatrix returns an n×n matrix where each off-diagonal entry is an
// edge with probability p and length in [1,maxW]. Every node gets at least
// one outgoing edge so it shows up in the edge list representation too.
func randomMatrix(r *rand.Rand, n int, p float64, maxW int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			if i != j && r.Float64() < p {
				m[i][j] = float64(1 + r.Intn(maxW))
			}
		}
		j := r.Intn(n - 1)
		if j >= i {
			j++
		}
		if m[i][j] == 0 {
			m[i][j] = float64(1 + r.Intn(maxW))
		}
	}

	return m
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath[string](nil, "a", "b")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_TypedNilGraph(t *testing.T) {
	var lg *graph.ListGraph[string]
	_, err := dijkstra.ShortestPath[string](lg, "a", "b")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	var mg *graph.MatrixGraph
	_, err = dijkstra.ShortestPath[int](mg, 0, 1)
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

func TestShortestPath_UnknownNodes(t *testing.T) {
	g := usaList(t)

	_, err := dijkstra.ShortestPath[string](g, "paris", "los_angeles")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, err = dijkstra.ShortestPath[string](g, "new_york", "paris")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, err = dijkstra.ShortestPath[int](usaMatrix(t), 0, 42)
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

// ------------------------------------------------------------------------
// 2. The city example on both representations.
// ------------------------------------------------------------------------

func TestShortestPath_USA_List(t *testing.T) {
	g := usaList(t)

	p, err := dijkstra.ShortestPath[string](g, "new_york", "los_angeles")
	require.NoError(t, err)

	// new_york→chicago(2)→denver(2), then washington(4)→los_angeles(3)
	// or san_diego(3)→los_angeles(4): both total 11.
	assert.Equal(t, 11.0, p.Distance)
	assert.Equal(t, 5, p.Len())
	assert.Contains(t, [][]string{
		{"new_york", "chicago", "denver", "washington", "los_angeles"},
		{"new_york", "chicago", "denver", "san_diego", "los_angeles"},
	}, p.Nodes)
	requireValidWalk[string](t, g, p, "new_york", "los_angeles")
}

func TestShortestPath_USA_Matrix(t *testing.T) {
	g := usaMatrix(t)

	p, err := dijkstra.ShortestPath[int](g, 0, 8)
	require.NoError(t, err)
	assert.Equal(t, 11.0, p.Distance)
	assert.Equal(t, 5, p.Len())
	requireValidWalk[int](t, g, p, 0, 8)

	assert.Equal(t, "new_york", g.Label(p.Nodes[0]))
	assert.Equal(t, "chicago", g.Label(p.Nodes[1]))
	assert.Equal(t, "denver", g.Label(p.Nodes[2]))
	assert.Equal(t, "los_angeles", g.Label(p.Nodes[4]))
}

func TestShortestPath_SameOriginAndDestination(t *testing.T) {
	p, err := dijkstra.ShortestPath[string](usaList(t), "denver", "denver")
	require.NoError(t, err)
	assert.Zero(t, p.Distance)
	assert.Equal(t, []string{"denver"}, p.Nodes)
}

// ------------------------------------------------------------------------
// 3. Early exit.
// ------------------------------------------------------------------------

// The destination is first seen over a long direct edge while a cheaper
// two-hop route is still on the frontier. Returning on that first sighting
// would report 10 instead of 2.
func TestShortestPath_EarlyExitWaitsForCheaperRoute(t *testing.T) {
	g, err := graph.NewListGraph([]graph.Edge[string]{
		{Source: "A", Destination: "D", Length: 10},
		{Source: "A", Destination: "B", Length: 1},
		{Source: "B", Destination: "D", Length: 1},
	})
	require.NoError(t, err)

	var st dijkstra.Stats
	p, err := dijkstra.ShortestPath[string](g, "A", "D", dijkstra.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Distance)
	assert.Equal(t, []string{"A", "B", "D"}, p.Nodes)
	// D is settled while relaxing B's edges: 2 <= dist(B)+MinLength.
	assert.True(t, st.EarlyExit)
	assert.Equal(t, 2, st.Visited)

	var late dijkstra.Stats
	q, err := dijkstra.ShortestPath[string](g, "A", "D", dijkstra.WithoutEarlyExit(), dijkstra.WithStats(&late))
	require.NoError(t, err)
	assert.Equal(t, p.Distance, q.Distance)
	assert.Equal(t, p.Nodes, q.Nodes)
	assert.False(t, late.EarlyExit)
	assert.Equal(t, 3, late.Visited)
}

// Weights that let a relax-time exit fire on a longer route if the bound
// were off by one edge: A→C(3) is relaxed first, but A→B(1)→C(1) is cheaper.
func TestShortestPath_EarlyExitBoundIsTight(t *testing.T) {
	m := [][]float64{
		{0, 1, 3},
		{0, 0, 1},
		{0, 0, 0},
	}
	g, err := graph.NewMatrixGraph(m)
	require.NoError(t, err)

	var st dijkstra.Stats
	p, err := dijkstra.ShortestPath[int](g, 0, 2, dijkstra.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Distance)
	assert.Equal(t, []int{0, 1, 2}, p.Nodes)
	assert.True(t, st.EarlyExit)
}

func TestWithStats_NilPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithStats(nil) })
}

// ------------------------------------------------------------------------
// 4. Unreachable destinations.
// ------------------------------------------------------------------------

func TestShortestPath_Unreachable(t *testing.T) {
	// los_angeles has no outgoing edges.
	p, err := dijkstra.ShortestPath[string](usaList(t), "los_angeles", "new_york")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.Empty(t, p.Nodes)

	// Two disconnected components in a matrix.
	g, err := graph.NewMatrixGraph([][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	require.NoError(t, err)
	_, err = dijkstra.ShortestPath[int](g, 0, 3)
	require.True(t, errors.Is(err, dijkstra.ErrNoPath), "got %v", err)
}

func TestShortestPath_IsolatedMatrixNode(t *testing.T) {
	g, err := graph.NewMatrixGraph([][]float64{{0, 0}, {0, 0}})
	require.NoError(t, err)

	_, err = dijkstra.ShortestPath[int](g, 0, 1)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	p, err := dijkstra.ShortestPath[int](g, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, p.Nodes)
}

// ------------------------------------------------------------------------
// 5. Repeated and concurrent searches share no state.
// ------------------------------------------------------------------------

func TestShortestPath_Idempotent(t *testing.T) {
	list := usaList(t)
	mat := usaMatrix(t)

	first, err := dijkstra.ShortestPath[string](list, "new_york", "los_angeles")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := dijkstra.ShortestPath[string](list, "new_york", "los_angeles")
		require.NoError(t, err)
		assert.Equal(t, first.Distance, again.Distance)
		assert.Equal(t, first.Len(), again.Len())
	}

	// A different query in between must not leak into the next one.
	_, err = dijkstra.ShortestPath[string](list, "chicago", "washington")
	require.NoError(t, err)
	again, err := dijkstra.ShortestPath[string](list, "new_york", "los_angeles")
	require.NoError(t, err)
	assert.Equal(t, first, again)

	m1, err := dijkstra.ShortestPath[int](mat, 0, 8)
	require.NoError(t, err)
	m2, err := dijkstra.ShortestPath[int](mat, 0, 8)
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
}

func TestShortestPath_Concurrent(t *testing.T) {
	list := usaList(t)
	mat := usaMatrix(t)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			p, err := dijkstra.ShortestPath[string](list, "new_york", "los_angeles")
			if err == nil && p.Distance != 11 {
				err = errors.New("list: wrong distance")
			}
			errs <- err
		}()
		go func() {
			defer wg.Done()
			p, err := dijkstra.ShortestPath[int](mat, 0, 8)
			if err == nil && p.Distance != 11 {
				err = errors.New("matrix: wrong distance")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

// ------------------------------------------------------------------------
// 6. Exhaustive cross-check on small random graphs.
// ------------------------------------------------------------------------

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 40; round++ {
		n := 2 + r.Intn(7) // 2..8 nodes
		m := randomMatrix(r, n, 0.35, 9)

		mat, err := graph.NewMatrixGraph(m)
		require.NoError(t, err)
		list, err := graph.NewListGraph(graph.EdgesFromMatrix(m))
		require.NoError(t, err)

		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				want := bruteForce[int](mat, u, v)

				mp, merr := dijkstra.ShortestPath[int](mat, u, v)
				lp, lerr := dijkstra.ShortestPath[int](list, u, v)
				if math.IsInf(want, 1) {
					require.ErrorIs(t, merr, dijkstra.ErrNoPath, "round %d %d→%d", round, u, v)
					require.ErrorIs(t, lerr, dijkstra.ErrNoPath, "round %d %d→%d", round, u, v)
					continue
				}
				require.NoError(t, merr)
				require.NoError(t, lerr)
				assert.Equal(t, want, mp.Distance, "matrix round %d %d→%d", round, u, v)
				assert.Equal(t, want, lp.Distance, "list round %d %d→%d", round, u, v)
				requireValidWalk[int](t, mat, mp, u, v)
				requireValidWalk[int](t, list, lp, u, v)

				np, err := dijkstra.ShortestPath[int](mat, u, v, dijkstra.WithoutEarlyExit())
				require.NoError(t, err)
				assert.Equal(t, want, np.Distance)
			}
		}
	}
}

// Matrix entries that are not integers still sum exactly along the path
// the search reports.
func TestShortestPath_FractionalLengths(t *testing.T) {
	g, err := graph.NewListGraph([]graph.Edge[string]{
		{Source: "s", Destination: "a", Length: 0.5},
		{Source: "a", Destination: "t", Length: 0.25},
		{Source: "s", Destination: "t", Length: 1},
	})
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath[string](g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, 0.75, p.Distance)
	assert.Equal(t, "s → a → t", p.String())
}
