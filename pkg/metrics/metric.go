package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EngineMetrics exposes the routing engine counters on the prometheus
// registry.
type EngineMetrics struct {
	routeRequests      *prometheus.CounterVec
	routeDuration      prometheus.Histogram
	graphCacheHits     prometheus.Counter
	graphCacheMisses   prometheus.Counter
	graphBuildDuration prometheus.Histogram
}

func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	factory := promauto.With(reg)
	return &EngineMetrics{
		routeRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saferoutex",
			Name:      "route_requests_total",
			Help:      "Route queries by outcome.",
		}, []string{"status"}),
		routeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "saferoutex",
			Name:      "route_duration_seconds",
			Help:      "End-to-end route computation latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		graphCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "saferoutex",
			Name:      "graph_cache_hits_total",
			Help:      "Graph cache lookups served without a rebuild.",
		}),
		graphCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "saferoutex",
			Name:      "graph_cache_misses_total",
			Help:      "Graph cache lookups that triggered a build.",
		}),
		graphBuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "saferoutex",
			Name:      "graph_build_duration_seconds",
			Help:      "Time spent materializing a weighted graph.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *EngineMetrics) ObserveRouteRequest(status string, seconds float64) {
	m.routeRequests.WithLabelValues(status).Inc()
	m.routeDuration.Observe(seconds)
}

func (m *EngineMetrics) GraphCacheHit() {
	m.graphCacheHits.Inc()
}

func (m *EngineMetrics) GraphCacheMiss() {
	m.graphCacheMisses.Inc()
}

func (m *EngineMetrics) ObserveGraphBuild(seconds float64) {
	m.graphBuildDuration.Observe(seconds)
}
