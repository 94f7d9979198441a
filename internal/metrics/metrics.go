package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SearchesTotal counts search requests by classified intent and outcome.
	// Intent is "event", "location" or "unknown" (failed before
	// classification); outcome is "ok", "no_results" or "error".
	SearchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "search",
		Name:      "requests_total",
		Help:      "Search requests by intent and outcome.",
	}, []string{"intent", "outcome"})

	// RequestDuration observes end-to-end HTTP request latency.
	RequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "search",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Register installs the collectors on the default registry. Call once at
// startup.
func Register() {
	prometheus.MustRegister(SearchesTotal, RequestDuration)
}

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
