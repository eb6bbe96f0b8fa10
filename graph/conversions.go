package graph

import "fmt"

// EdgesFromMatrix lists every positive entry of weights as an edge, in
// row-major order. Feeding the result to NewListGraph yields the same
// logical graph as NewMatrixGraph(weights).
//
// Complexity: O(N²).
func EdgesFromMatrix(weights [][]float64) []Edge[int] {
	out := make([]Edge[int], 0)
	for i, row := range weights {
		for j, w := range row {
			if w > 0 {
				out = append(out, Edge[int]{Source: i, Destination: j, Length: w})
			}
		}
	}

	return out
}

// MatrixFromEdges lays edges out as an n×n weight table, using index to map
// each node to its row/column. For parallel edges the first one wins, the
// same edge ListGraph.DistanceBetween would report.
//
// Returns ErrUnknownNode if index maps a node outside [0, n).
//
// Complexity: O(n² + E).
func MatrixFromEdges[N comparable](edges []Edge[N], index func(N) int, n int) ([][]float64, error) {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	var i, j int
	for _, e := range edges {
		i, j = index(e.Source), index(e.Destination)
		if i < 0 || i >= n {
			return nil, fmt.Errorf("source %v -> %d: %w", e.Source, i, ErrUnknownNode)
		}
		if j < 0 || j >= n {
			return nil, fmt.Errorf("destination %v -> %d: %w", e.Destination, j, ErrUnknownNode)
		}
		if m[i][j] == 0 {
			m[i][j] = e.Length
		}
	}

	return m, nil
}

// Indexer assigns dense indices to nodes in the order ListGraph.Nodes
// reports them. The returned function yields -1 for unknown nodes.
func Indexer[N comparable](g *ListGraph[N]) (nodes []N, index func(N) int) {
	nodes = g.Nodes()
	idx := make(map[N]int, len(nodes))
	for i, n := range nodes {
		idx[n] = i
	}

	return nodes, func(n N) int {
		if i, ok := idx[n]; ok {
			return i
		}
		return -1
	}
}
