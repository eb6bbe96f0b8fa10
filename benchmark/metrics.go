package benchmark

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors a Run reports into.
type Metrics struct {
	buildSeconds  *prometheus.HistogramVec
	searchSeconds *prometheus.HistogramVec
	pathDistance  *prometheus.GaugeVec
	pathNodes     *prometheus.GaugeVec
	sampleSeconds prometheus.Gauge
	divergences   prometheus.Counter
}

// NewMetrics creates the benchmark collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	buckets := prometheus.ExponentialBuckets(0.0001, 4, 12) // 100µs .. ~7min

	return &Metrics{
		buildSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dijkstra",
			Subsystem: "benchmark",
			Name:      "build_seconds",
			Help:      "Time spent constructing a graph representation",
			Buckets:   buckets,
		}, []string{"representation"}),
		searchSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dijkstra",
			Subsystem: "benchmark",
			Name:      "search_seconds",
			Help:      "Time spent in one shortest-path search, per representation",
			Buckets:   buckets,
		}, []string{"representation"}),
		pathDistance: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dijkstra",
			Subsystem: "benchmark",
			Name:      "path_distance",
			Help:      "Distance of the last path found, per representation",
		}, []string{"representation"}),
		pathNodes: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dijkstra",
			Subsystem: "benchmark",
			Name:      "path_nodes",
			Help:      "Number of nodes on the last path found, per representation",
		}, []string{"representation"}),
		sampleSeconds: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "dijkstra",
			Subsystem: "benchmark",
			Name:      "sample_build_seconds",
			Help:      "Time spent generating the synthetic sample set",
		}),
		divergences: f.NewCounter(prometheus.CounterOpts{
			Namespace: "dijkstra",
			Subsystem: "benchmark",
			Name:      "divergences_total",
			Help:      "Number of runs where the representations disagreed",
		}),
	}
}

func (m *Metrics) observeSample(d time.Duration) {
	if m == nil {
		return
	}
	m.sampleSeconds.Set(d.Seconds())
}

func (m *Metrics) observe(ms Measurement) {
	if m == nil {
		return
	}
	m.buildSeconds.WithLabelValues(ms.Representation).Observe(ms.Build.Seconds())
	m.searchSeconds.WithLabelValues(ms.Representation).Observe(ms.Search.Seconds())
	m.pathDistance.WithLabelValues(ms.Representation).Set(ms.Path.Distance)
	m.pathNodes.WithLabelValues(ms.Representation).Set(float64(ms.Path.Len()))
}

func (m *Metrics) divergence() {
	if m == nil {
		return
	}
	m.divergences.Inc()
}
