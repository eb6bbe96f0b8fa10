package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/oddlyfunctional/mentoring-adebayo/builder"
	"github.com/oddlyfunctional/mentoring-adebayo/dijkstra"
	"github.com/oddlyfunctional/mentoring-adebayo/graph"
)

// Run generates the sample graph described by cfg, measures both
// representations and cross-validates their results.
//
// It returns ErrBadConfig for an unusable cfg, ctx.Err() if ctx is done
// between phases, and an error wrapping ErrDivergence if the two
// representations disagree on distance or path length.
func Run(ctx context.Context, cfg Config, opts ...RunOption) (Report, error) {
	o := newRunOptions(opts...)
	l := o.logger

	cfg, err := cfg.resolve()
	if err != nil {
		return Report{}, err
	}
	rep := Report{Config: cfg}

	// 1) Sample set: the matrix and the edge list derived from it.
	l.Info("Building sample set", slog.Int("nodes", cfg.Nodes), slog.Int("degree", cfg.Degree), slog.Int64("seed", cfg.Seed))
	start := time.Now()
	weights, err := builder.DenseRandom(cfg.Nodes, cfg.Degree,
		builder.WithSeed(cfg.Seed),
		builder.WithWeightRange(cfg.MinWeight, cfg.MaxWeight),
		builder.WithSentinel(cfg.Sentinel),
	)
	if err != nil {
		return Report{}, fmt.Errorf("generating sample set: %w", err)
	}
	edges := graph.EdgesFromMatrix(weights)
	rep.Sample = time.Since(start)
	rep.Edges = len(edges)
	o.metrics.observeSample(rep.Sample)
	l.Info("Finished building sample set", slog.Duration("elapsed", rep.Sample), slog.Int("edges", rep.Edges))

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	// 2) Matrix representation.
	rep.Matrix, err = measure(Matrix, func() (graph.Graph[int], error) {
		g, err := graph.NewMatrixGraph(weights)
		return g, err
	}, cfg.Origin, cfg.Destination)
	if err != nil {
		return Report{}, err
	}
	o.metrics.observe(rep.Matrix)
	l.Info("Measured representation", slog.String("representation", Matrix), slog.Any("result", rep.Matrix))

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	// 3) List representation.
	rep.List, err = measure(List, func() (graph.Graph[int], error) {
		g, err := graph.NewListGraph(edges)
		return g, err
	}, cfg.Origin, cfg.Destination)
	if err != nil {
		return Report{}, err
	}
	o.metrics.observe(rep.List)
	l.Info("Measured representation", slog.String("representation", List), slog.Any("result", rep.List))

	// 4) Sanity check: both must agree.
	if err := crossCheck(rep.Matrix, rep.List); err != nil {
		o.metrics.divergence()
		l.Error("Representations disagree", slog.Any("error", err))
		return rep, err
	}
	l.Debug("Cross-check passed", slog.Float64("distance", rep.Matrix.Path.Distance), slog.Int("pathNodes", rep.Matrix.Path.Len()))

	return rep, nil
}

// measure times construction and a single search separately.
func measure(name string, build func() (graph.Graph[int], error), origin, destination int) (Measurement, error) {
	m := Measurement{Representation: name}

	start := time.Now()
	g, err := build()
	m.Build = time.Since(start)
	if err != nil {
		return m, fmt.Errorf("building %s graph: %w", name, err)
	}

	start = time.Now()
	m.Path, err = dijkstra.ShortestPath(g, origin, destination, dijkstra.WithStats(&m.Stats))
	m.Search = time.Since(start)
	if err != nil {
		return m, fmt.Errorf("searching %s graph: %w", name, err)
	}

	return m, nil
}

// crossCheck compares distance and number of path nodes.
func crossCheck(a, b Measurement) error {
	if a.Path.Distance != b.Path.Distance {
		return fmt.Errorf("distance: %s is %g and %s is %g: %w",
			a.Representation, a.Path.Distance, b.Representation, b.Path.Distance, ErrDivergence)
	}
	if a.Path.Len() != b.Path.Len() {
		return fmt.Errorf("path nodes: %s has %d and %s has %d: %w",
			a.Representation, a.Path.Len(), b.Representation, b.Path.Len(), ErrDivergence)
	}

	return nil
}

// resolve fills defaults and validates cfg.
func (c Config) resolve() (Config, error) {
	if c.Destination < 0 {
		c.Destination = c.Nodes - 1
	}
	if c.Nodes < 2 {
		return c, fmt.Errorf("nodes=%d < 2: %w", c.Nodes, ErrBadConfig)
	}
	if c.Degree < 0 || c.Degree >= c.Nodes {
		return c, fmt.Errorf("degree=%d not in [0,%d): %w", c.Degree, c.Nodes, ErrBadConfig)
	}
	if c.Origin < 0 || c.Origin >= c.Nodes {
		return c, fmt.Errorf("origin=%d not in [0,%d): %w", c.Origin, c.Nodes, ErrBadConfig)
	}
	if c.Destination >= c.Nodes {
		return c, fmt.Errorf("destination=%d not in [0,%d): %w", c.Destination, c.Nodes, ErrBadConfig)
	}
	// Written so that a NaN sentinel fails too.
	if c.MinWeight < 1 || c.MaxWeight < c.MinWeight || !(c.Sentinel > float64(c.MaxWeight)) || math.IsInf(c.Sentinel, 0) {
		return c, fmt.Errorf("weights [%d,%d] sentinel %g: %w", c.MinWeight, c.MaxWeight, c.Sentinel, ErrBadConfig)
	}

	return c, nil
}
