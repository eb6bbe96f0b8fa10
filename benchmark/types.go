package benchmark

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/oddlyfunctional/mentoring-adebayo/builder"
	"github.com/oddlyfunctional/mentoring-adebayo/dijkstra"
)

// Sentinel errors returned by Run.
var (
	// ErrBadConfig indicates a Config that cannot describe a run.
	ErrBadConfig = errors.New("benchmark: invalid config")

	// ErrDivergence indicates that the two representations disagree.
	ErrDivergence = errors.New("benchmark: representations disagree")
)

// Representation names used in reports, logs and metric labels.
const (
	Matrix = "matrix"
	List   = "list"
)

// Config describes the synthetic graph and the query.
type Config struct {
	Nodes       int     // number of nodes
	Degree      int     // random outgoing edges per node
	Seed        int64   // RNG seed for the generator
	Origin      int     // search origin
	Destination int     // search destination; negative means Nodes-1
	MinWeight   int     // smallest random edge length
	MaxWeight   int     // largest random edge length
	Sentinel    float64 // length of every non-random edge
}

// DefaultConfig returns the reference setup: 1000 nodes with 100 random
// edges each, lengths in [1,100], sentinel 999999, from node 0 to the last node.
func DefaultConfig() Config {
	return Config{
		Nodes:       1000,
		Degree:      100,
		Seed:        1,
		Origin:      0,
		Destination: -1,
		MinWeight:   builder.DefaultMinWeight,
		MaxWeight:   builder.DefaultMaxWeight,
		Sentinel:    builder.DefaultSentinel,
	}
}

// Measurement holds the timings and result of one representation.
type Measurement struct {
	Representation string
	Build          time.Duration
	Search         time.Duration
	Path           dijkstra.Path[int]
	Stats          dijkstra.Stats
}

// LogValue implements slog.LogValuer.
func (m Measurement) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("build", m.Build),
		slog.Duration("search", m.Search),
		slog.Float64("distance", m.Path.Distance),
		slog.Int("pathNodes", m.Path.Len()),
		slog.Int("visited", m.Stats.Visited),
	)
}

// Report is the outcome of a successful Run.
type Report struct {
	Config Config
	Sample time.Duration // matrix generation plus edge list derivation
	Edges  int           // edges in the list representation
	Matrix Measurement
	List   Measurement
}

// Speedup returns how many times faster the matrix search was than the
// list search, 0 if the matrix search took no measurable time.
func (r Report) Speedup() float64 {
	if r.Matrix.Search <= 0 {
		return 0
	}

	return float64(r.List.Search) / float64(r.Matrix.Search)
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("nodes", r.Config.Nodes),
		slog.Int("edges", r.Edges),
		slog.Duration("sample", r.Sample),
		slog.Any(Matrix, r.Matrix),
		slog.Any(List, r.List),
		slog.Float64("speedup", r.Speedup()),
	)
}

type runOptions struct {
	logger  *slog.Logger
	metrics *Metrics
}

// RunOption configures Run.
type RunOption func(*runOptions)

// WithLogger sends progress to l. Panics on nil.
func WithLogger(l *slog.Logger) RunOption {
	if l == nil {
		panic("benchmark: WithLogger(nil)")
	}
	return func(o *runOptions) {
		o.logger = l
	}
}

// WithMetrics records timings into m. Panics on nil.
func WithMetrics(m *Metrics) RunOption {
	if m == nil {
		panic("benchmark: WithMetrics(nil)")
	}
	return func(o *runOptions) {
		o.metrics = m
	}
}

func newRunOptions(opts ...RunOption) runOptions {
	o := runOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
