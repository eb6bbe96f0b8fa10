// Package benchmark compares the shortest-path search on the two graph
// representations over one large synthetic graph.
//
// A run:
//
//  1. Generates a dense random weight matrix with builder.DenseRandom
//     (default 1000 nodes, 100 random edges each, sentinel edges elsewhere)
//     and derives the equivalent edge list from it ("sample set").
//  2. For the matrix and then the list representation, times graph
//     construction and one search from Origin to Destination separately.
//  3. Cross-validates the two results: the distances and the path lengths
//     must be identical. Any difference is returned as ErrDivergence and is
//     meant to stop the caller; nothing is retried.
//
// Progress is logged through an optional *slog.Logger and timings can be
// recorded into prometheus collectors (see Metrics).
package benchmark
