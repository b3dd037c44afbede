package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "climate_dashboard"

// Metrics holds the Prometheus collectors for dashboard queries and alert dispatch.
type Metrics struct {
	Queries       *prometheus.CounterVec   // labels: kind={reports,users,pins}
	QueryDuration *prometheus.HistogramVec // labels: kind
	QueryMatched  *prometheus.HistogramVec // labels: kind
	PageCache     *prometheus.CounterVec   // labels: result={hit,miss,error}

	MessagesPublished prometheus.Counter
	Deliveries        *prometheus.CounterVec // labels: outcome={delivered,failed,skipped}
}

// NewMetrics creates and registers all collectors with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Queries,
		m.QueryDuration,
		m.QueryMatched,
		m.PageCache,
		m.MessagesPublished,
		m.Deliveries,
	)
	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build
// as many instances as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Filter and paginate queries served, by record kind.",
		}, []string{"kind"}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Time spent filtering and paginating a record collection.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"kind"}),
		QueryMatched: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_matched_records",
			Help:      "Number of records matching the filter criteria.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}, []string{"kind"}),
		PageCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_cache_total",
			Help:      "Page cache lookups by result.",
		}, []string{"result"}),
		MessagesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_published_total",
			Help:      "Alert messages queued for gateway delivery.",
		}),
		Deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "message_deliveries_total",
			Help:      "Gateway delivery attempts by final outcome.",
		}, []string{"outcome"}),
	}
}
