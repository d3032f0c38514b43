package observability

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kgraph"

// PrometheusHooks implements every hook interface on top of Prometheus
// collectors registered with a caller-supplied registry.
type PrometheusHooks struct {
	sourceRecords  *prometheus.CounterVec
	sourceSkipped  *prometheus.CounterVec
	sourceErrors   *prometheus.CounterVec
	sourceDuration *prometheus.HistogramVec

	levelsReached  prometheus.Gauge
	chainsEmitted  prometheus.Counter
	chainsFailed   prometheus.Counter
	renderNodes    prometheus.Histogram
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec

	cacheOps *prometheus.CounterVec
}

var (
	_ IngestHooks   = (*PrometheusHooks)(nil)
	_ AnalysisHooks = (*PrometheusHooks)(nil)
	_ CacheHooks    = (*PrometheusHooks)(nil)
)

// NewPrometheusHooks creates the collectors and registers them with reg.
// It panics if reg already holds collectors with the same names.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	h := &PrometheusHooks{
		sourceRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_records_total",
			Help:      "Records merged into the graph, by source.",
		}, []string{"source"}),
		sourceSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_records_skipped_total",
			Help:      "Malformed records logged and skipped, by source.",
		}, []string{"source"}),
		sourceErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_errors_total",
			Help:      "Source passes that failed to read their file.",
		}, []string{"source"}),
		sourceDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_duration_seconds",
			Help:      "Time spent loading one source file.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"source"}),
		levelsReached: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "levels_reached_nodes",
			Help:      "Nodes reached by the last level assignment.",
		}),
		chainsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chains_emitted_total",
			Help:      "Relationship chains emitted.",
		}),
		chainsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chains_unresolved_total",
			Help:      "Chain segments dropped for an unresolved relation.",
		}),
		renderNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_nodes",
			Help:      "Node count of rendered subgraphs.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Render calls, by layout and status.",
		}, []string{"layout", "status"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Render duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"layout", "formats"}),
		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Snapshot cache operations, by key type and result.",
		}, []string{"key_type", "result"}),
	}

	reg.MustRegister(
		h.sourceRecords,
		h.sourceSkipped,
		h.sourceErrors,
		h.sourceDuration,
		h.levelsReached,
		h.chainsEmitted,
		h.chainsFailed,
		h.renderNodes,
		h.renders,
		h.renderDuration,
		h.cacheOps,
	)
	return h
}

func (h *PrometheusHooks) OnSourceStart(context.Context, string, string) {}

func (h *PrometheusHooks) OnRecordSkipped(_ context.Context, source string, _ error) {
	h.sourceSkipped.WithLabelValues(source).Inc()
}

func (h *PrometheusHooks) OnSourceComplete(_ context.Context, source string, records, _ int, d time.Duration, err error) {
	h.sourceRecords.WithLabelValues(source).Add(float64(records))
	h.sourceDuration.WithLabelValues(source).Observe(d.Seconds())
	if err != nil {
		h.sourceErrors.WithLabelValues(source).Inc()
	}
}

func (h *PrometheusHooks) OnLevelsComplete(_ context.Context, _, reached int, _ time.Duration) {
	h.levelsReached.Set(float64(reached))
}

func (h *PrometheusHooks) OnChainsComplete(_ context.Context, chains, unresolved int, _ time.Duration) {
	h.chainsEmitted.Add(float64(chains))
	h.chainsFailed.Add(float64(unresolved))
}

func (h *PrometheusHooks) OnRenderStart(_ context.Context, _ string, nodeCount int) {
	h.renderNodes.Observe(float64(nodeCount))
}

func (h *PrometheusHooks) OnRenderComplete(_ context.Context, layout string, formats []string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	h.renders.WithLabelValues(layout, status).Inc()
	h.renderDuration.WithLabelValues(layout, strings.Join(formats, ",")).Observe(d.Seconds())
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, _ int) {
	h.cacheOps.WithLabelValues(keyType, "set").Inc()
}

// WriteTextfile writes every metric gathered from g to path in the text
// exposition format read by node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
