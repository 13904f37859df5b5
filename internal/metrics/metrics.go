package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turnero_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "turnero_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turnero_backend_requests_total",
			Help: "Total number of requests to the booking backend",
		},
		[]string{"method", "status"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "turnero_backend_request_duration_seconds",
			Help:    "Booking backend round-trip duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	BookingsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turnero_bookings_submitted_total",
			Help: "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turnero_booking_cancellations_total",
			Help: "Cancellation attempts by outcome",
		},
		[]string{"outcome"},
	)

	CatalogCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "turnero_catalog_cache_hits_total",
			Help: "Catalog reads served from the snapshot cache",
		},
	)

	CatalogCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "turnero_catalog_cache_misses_total",
			Help: "Catalog reads that fell through to the backend",
		},
	)
)

// Booking and cancellation outcomes. gate_blocked means the request was
// refused locally, before any backend round trip.
const (
	OutcomeForwarded       = "forwarded"
	OutcomeGateBlocked     = "gate_blocked"
	OutcomeBackendRejected = "backend_rejected"
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBackendRequest(method, status string, duration float64) {
	BackendRequestsTotal.WithLabelValues(method, status).Inc()
	BackendRequestDuration.WithLabelValues(method).Observe(duration)
}

func RecordBookingSubmitted(outcome string) {
	BookingsSubmittedTotal.WithLabelValues(outcome).Inc()
}

func RecordCancellation(outcome string) {
	CancellationsTotal.WithLabelValues(outcome).Inc()
}

func RecordCatalogCache(hit bool) {
	if hit {
		CatalogCacheHitsTotal.Inc()
	} else {
		CatalogCacheMissesTotal.Inc()
	}
}
