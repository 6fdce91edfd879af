package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	backendOnce sync.Once

	backendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "talentboard",
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Latency of calls to the hiring backend in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)

	backendTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "talentboard",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Total number of calls issued to the hiring backend.",
		},
		[]string{"operation", "status"},
	)
)

// ObserveBackendRequest records one call to the hiring backend. Status
// is the HTTP status code or "transport_error" when no response arrived.
func ObserveBackendRequest(operation, status string, elapsed time.Duration) {
	backendOnce.Do(func() {
		prometheus.MustRegister(backendDuration, backendTotal)
	})

	labels := prometheus.Labels{"operation": operation, "status": status}
	backendDuration.With(labels).Observe(elapsed.Seconds())
	backendTotal.With(labels).Inc()
}
