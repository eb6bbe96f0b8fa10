package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oddlyfunctional/mentoring-adebayo/benchmark"
	"github.com/oddlyfunctional/mentoring-adebayo/dijkstra"
	"github.com/oddlyfunctional/mentoring-adebayo/graph"
)

// cities is a small road network between US cities.
var cities = []graph.Edge[string]{
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

type exampleCmd struct {
	From string `help:"Origin city" default:"new_york"`
	To   string `help:"Destination city" default:"los_angeles"`
}

func (c *exampleCmd) Run(l *slog.Logger) error {
	return runExample(os.Stdout, l, c.From, c.To)
}

// runExample searches from→to on the list form of cities and on the matrix
// built from it, printing both paths.
func runExample(w io.Writer, l *slog.Logger, from, to string) error {
	lg, err := graph.NewListGraph(cities)
	if err != nil {
		return err
	}
	nodes, index := graph.Indexer(lg)
	weights, err := graph.MatrixFromEdges(cities, index, len(nodes))
	if err != nil {
		return err
	}
	mg, err := graph.NewMatrixGraph(weights)
	if err != nil {
		return err
	}
	mg = mg.Labelled(nodes)

	lp, err := dijkstra.ShortestPath[string](lg, from, to)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	fmt.Fprintf(w, "list:   %s (distance %g)\n", lp, lp.Distance)

	// Unknown cities map to -1 and are reported by the search.
	mp, err := dijkstra.ShortestPath[int](mg, index(from), index(to))
	if err != nil {
		return fmt.Errorf("matrix: %w", err)
	}
	fmt.Fprintf(w, "matrix: %s (distance %g)\n", mp.Format(mg.Label), mp.Distance)

	l.Debug("Searched city example", slog.String("from", from), slog.String("to", to), slog.Float64("distance", lp.Distance))

	return agree(lp, mp)
}

// agree applies the benchmark's cross-check to the two city paths.
func agree(lp dijkstra.Path[string], mp dijkstra.Path[int]) error {
	if lp.Distance != mp.Distance || lp.Len() != mp.Len() {
		return fmt.Errorf("city example: list %g over %d nodes, matrix %g over %d nodes: %w",
			lp.Distance, lp.Len(), mp.Distance, mp.Len(), benchmark.ErrDivergence)
	}

	return nil
}
