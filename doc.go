// Package dijkstrabench is a small laboratory for single-source shortest
// paths: one search, two graph representations, and a harness that times
// them against each other.
//
// What is inside?
//
//	graph/     - the Graph[N] contract, ListGraph (edge list) and MatrixGraph
//	             (dense weight table with a cached neighbour list), conversions
//	dijkstra/  - ShortestPath over any Graph[N], with a guarded early exit
//	builder/   - DenseRandom: reproducible dense random weight matrices
//	benchmark/ - Run: build both representations, time them, cross-check
//	cmd/dijkstra-bench - command line front end (flags, env, metrics file)
//
// Quick ASCII example:
//
//	A ──1──▶ B ──2──▶ C
//	└─────────5───────┘
//
// ShortestPath from A to C returns distance 3 via B on either representation.
//
// The reference comparison is 1000 nodes with 100 random edges each, every
// other pair joined by a 999999-length edge:
//
//	go run ./cmd/dijkstra-bench --log-level=debug
package dijkstrabench
