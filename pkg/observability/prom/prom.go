// Package prom implements the observability hooks with Prometheus metrics.
package prom

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/cattree/pkg/observability"
)

const namespace = "cattree"

// Hooks records query, build and HTTP events as Prometheus metrics.
// It implements [observability.QueryHooks], [observability.BuildHooks] and
// [observability.HTTPHooks].
type Hooks struct {
	queries       *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	queryRecords  *prometheus.GaugeVec

	builds        prometheus.Counter
	buildDuration prometheus.Histogram
	treeNodes     *prometheus.GaugeVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpErrors   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Hooks, error) {
	h := &Hooks{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Category queries by source and result.",
		}, []string{"source", "result"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Duration of category queries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		queryRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "query_records",
			Help:      "Top-level records returned by the last successful query.",
		}, []string{"source"}),
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Completed tree builds.",
		}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of tree builds.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}),
		treeNodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_nodes",
			Help:      "Node counts of the last built tree.",
		}, []string{"scope"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Upstream HTTP responses by host and status code.",
		}, []string{"host", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of upstream HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"host"}),
		httpErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "Upstream HTTP transport failures by host.",
		}, []string{"host"}),
	}

	for _, c := range []prometheus.Collector{
		h.queries, h.queryDuration, h.queryRecords,
		h.builds, h.buildDuration, h.treeNodes,
		h.httpRequests, h.httpDuration, h.httpErrors,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Register installs h as the process-wide query, build and HTTP hooks.
func (h *Hooks) Register() {
	observability.SetQueryHooks(h)
	observability.SetBuildHooks(h)
	observability.SetHTTPHooks(h)
}

func (h *Hooks) OnQueryStart(context.Context) {}

func (h *Hooks) OnQueryComplete(ctx context.Context, records int, d time.Duration, err error) {
	source := observability.SourceFromContext(ctx)
	h.queryDuration.WithLabelValues(source).Observe(d.Seconds())
	if err != nil {
		h.queries.WithLabelValues(source, "error").Inc()
		return
	}
	h.queries.WithLabelValues(source, "ok").Inc()
	h.queryRecords.WithLabelValues(source).Set(float64(records))
}

func (h *Hooks) OnBuildComplete(_ context.Context, s observability.BuildStats) {
	h.builds.Inc()
	h.buildDuration.Observe(s.Duration.Seconds())
	h.treeNodes.WithLabelValues("top").Set(float64(s.TopLevel))
	h.treeNodes.WithLabelValues("all").Set(float64(s.Total))
	h.treeNodes.WithLabelValues("home").Set(float64(s.Home))
}

func (h *Hooks) OnRequest(context.Context, string, string, string) {}

func (h *Hooks) OnResponse(_ context.Context, _, host, _ string, code int, d time.Duration) {
	h.httpRequests.WithLabelValues(host, strconv.Itoa(code)).Inc()
	h.httpDuration.WithLabelValues(host).Observe(d.Seconds())
}

func (h *Hooks) OnError(_ context.Context, _, host, _ string, _ error) {
	h.httpErrors.WithLabelValues(host).Inc()
}

var (
	_ observability.QueryHooks = (*Hooks)(nil)
	_ observability.BuildHooks = (*Hooks)(nil)
	_ observability.HTTPHooks  = (*Hooks)(nil)
)
