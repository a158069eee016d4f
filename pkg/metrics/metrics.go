// Package metrics provides Prometheus instrumentation for the canteen
// client. The facade records every outgoing API call; the dev server
// exposes the registry on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// APICallDuration tracks outgoing API call latency by endpoint and status.
	APICallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "canteen",
			Subsystem: "api",
			Name:      "call_duration_seconds",
			Help:      "Duration of backend API calls in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	// APICallTotal counts all outgoing API calls.
	APICallTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "canteen",
			Subsystem: "api",
			Name:      "calls_total",
			Help:      "Total number of backend API calls.",
		},
		[]string{"method", "endpoint", "status"},
	)

	// ForcedLogouts counts 401 responses that cleared the session.
	ForcedLogouts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "canteen",
		Subsystem: "session",
		Name:      "forced_logouts_total",
		Help:      "Sessions cleared because the backend rejected the credential.",
	})

	// CacheHits / CacheMisses track catalog cache effectiveness.
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "canteen",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total catalog cache hits.",
	})
	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "canteen",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total catalog cache misses.",
	})
)

// DefaultRegistry is the Prometheus registry for the client.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		APICallDuration,
		APICallTotal,
		ForcedLogouts,
		CacheHits,
		CacheMisses,
	)
}

// ObserveCall records one outgoing API call.
func ObserveCall(method, endpoint string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	APICallTotal.WithLabelValues(method, endpoint, code).Inc()
	APICallDuration.WithLabelValues(method, endpoint, code).Observe(elapsed.Seconds())
}

// Handler serves the registry in Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{})
}
