// Package dijkstra finds the shortest path between two nodes of any
// graph.Graph with strictly positive edge lengths.
//
// Overview:
//
//   - The search is written once against the graph.Graph contract
//     (Nodes, Neighbours, DistanceBetween, MinLength), so the same code
//     runs over a graph.ListGraph and a graph.MatrixGraph.
//   - All search state (tentative distances, previous links, the visited
//     set) is allocated per call and dropped on return. Graph values are
//     never written to, so repeated or concurrent searches over one graph
//     do not interfere.
//   - The next node to settle is found by a linear scan over the unvisited
//     nodes. There is no priority queue: the search is O(V²) plus the cost
//     of the graph's Neighbours/DistanceBetween calls.
//
// Early exit:
//
// The search can return as soon as the destination is relaxed as a
// neighbour of the current node, before it is ever selected as current.
// This is sound only because every edge is strictly positive: any route
// not yet examined must leave the frontier through an unvisited node u with
// dist(u) ≥ dist(current) and then pay at least one more edge of length
// ≥ MinLength. So when
//
//	dist(destination) ≤ dist(current) + MinLength
//
// no later route can beat the destination's tentative distance and it is
// returned right away. Otherwise the search continues and returns when the
// destination is selected as current. WithoutEarlyExit disables the first
// exit point.
//
// Errors (sentinel):
//
//   - ErrNilGraph:     the graph argument is nil.
//   - ErrNodeNotFound: origin or destination is not a node of the graph.
//   - ErrNoPath:       the destination is not reachable from the origin.
//
// Example:
//
//	g, _ := graph.NewListGraph(edges)
//	p, err := dijkstra.ShortestPath[string](g, "new_york", "los_angeles")
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // unreachable
//	}
//	fmt.Println(p.Distance, p.Nodes)
package dijkstra
