// Package observability exposes Prometheus metrics for the checkout flow.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PaymentsInitiated counts checkout attempts for which a gateway form
	// was issued.
	PaymentsInitiated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yagout_payments_initiated_total",
			Help: "Total number of payment requests built and handed to the browser",
		},
	)

	// CallbacksTotal counts inbound gateway callbacks by outcome:
	// "verified", "rejected".
	CallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yagout_callbacks_total",
			Help: "Total number of gateway callbacks by verification outcome",
		},
		[]string{"outcome"},
	)

	// HTTPRequestDuration observes handler latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
