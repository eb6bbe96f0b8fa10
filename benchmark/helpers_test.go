package benchmark_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oddlyfunctional/mentoring-adebayo/benchmark"
	"github.com/oddlyfunctional/mentoring-adebayo/builder"
	"github.com/oddlyfunctional/mentoring-adebayo/graph"
)

// edgesFor regenerates the sample set Run builds for cfg.
func edgesFor(t *testing.T, cfg benchmark.Config) []graph.Edge[int] {
	t.Helper()
	m, err := builder.DenseRandom(cfg.Nodes, cfg.Degree,
		builder.WithSeed(cfg.Seed),
		builder.WithWeightRange(cfg.MinWeight, cfg.MaxWeight),
		builder.WithSentinel(cfg.Sentinel),
	)
	require.NoError(t, err)

	return graph.EdgesFromMatrix(m)
}
