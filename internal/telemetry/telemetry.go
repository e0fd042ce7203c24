// Package telemetry provides Prometheus metrics for monitoring the service.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ObservationsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uxmetrics_observations_ingested_total",
			Help: "Total number of observations ingested",
		},
		[]string{"kind"},
	)
	SnapshotsWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "uxmetrics_report_snapshots_total",
			Help: "Total number of automated report snapshots written",
		},
	)
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uxmetrics_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "uxmetrics_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func RecordObservationIngested(kind string) {
	ObservationsIngested.WithLabelValues(kind).Inc()
}

func RecordSnapshotWritten() {
	SnapshotsWritten.Inc()
}

func RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
