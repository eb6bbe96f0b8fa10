package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oddlyfunctional/mentoring-adebayo/benchmark"
)

type runCmd struct {
	Nodes       int     `help:"Number of nodes" default:"1000" env:"DIJKSTRA_BENCH_NODES"`
	Degree      int     `help:"Random outgoing edges per node" default:"100" env:"DIJKSTRA_BENCH_DEGREE"`
	Seed        int64   `help:"Generator seed" default:"1" env:"DIJKSTRA_BENCH_SEED"`
	Origin      int     `help:"Origin node" default:"0" env:"DIJKSTRA_BENCH_ORIGIN"`
	Destination int     `help:"Destination node, negative for the last node" default:"-1" env:"DIJKSTRA_BENCH_DESTINATION"`
	MinWeight   int     `help:"Smallest random edge length" default:"1" env:"DIJKSTRA_BENCH_MIN_WEIGHT"`
	MaxWeight   int     `help:"Largest random edge length" default:"100" env:"DIJKSTRA_BENCH_MAX_WEIGHT"`
	Sentinel    float64 `help:"Length of every non-random edge" default:"999999" env:"DIJKSTRA_BENCH_SENTINEL"`
	MetricsFile string  `help:"Write Prometheus metrics in text format to this file" placeholder:"PATH" env:"DIJKSTRA_BENCH_METRICS_FILE"`
}

func (c *runCmd) config() benchmark.Config {
	return benchmark.Config{
		Nodes:       c.Nodes,
		Degree:      c.Degree,
		Seed:        c.Seed,
		Origin:      c.Origin,
		Destination: c.Destination,
		MinWeight:   c.MinWeight,
		MaxWeight:   c.MaxWeight,
		Sentinel:    c.Sentinel,
	}
}

func (c *runCmd) Run(l *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	reg := prometheus.NewRegistry()
	metrics := benchmark.NewMetrics(reg)

	rep, err := benchmark.Run(ctx, c.config(), benchmark.WithLogger(l), benchmark.WithMetrics(metrics))

	// Metrics are written even for a divergent run; the divergence counter is
	// the interesting part then.
	if c.MetricsFile != "" {
		if werr := prometheus.WriteToTextfile(c.MetricsFile, reg); werr != nil {
			l.Warn("Failed to write metrics", slog.String("path", c.MetricsFile), slog.Any("error", werr))
		}
	}
	if err != nil {
		return err
	}

	printReport(os.Stdout, rep)
	l.Info("Done", slog.Any("report", rep))

	return nil
}

func printReport(w io.Writer, rep benchmark.Report) {
	fmt.Fprintf(w, "Sample set: %d nodes, %d edges, built in %v\n", rep.Config.Nodes, rep.Edges, rep.Sample)
	for _, m := range []benchmark.Measurement{rep.Matrix, rep.List} {
		fmt.Fprintf(w, "%-6s build %-12v search %-12v distance %g, %d nodes on path\n",
			m.Representation, m.Build, m.Search, m.Path.Distance, m.Path.Len())
	}
	if s := rep.Speedup(); s > 0 {
		fmt.Fprintf(w, "matrix search was %.1fx the speed of list search\n", s)
	}
}
