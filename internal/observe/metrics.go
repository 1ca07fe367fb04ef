// Package observe holds the process-wide Prometheus instruments shared
// by the HTTP components. Instruments register against the default
// registry; the server binary exposes them at /metrics.
package observe

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datagen_http_requests_total",
			Help: "Total HTTP requests served, by route and status code",
		},
		[]string{"route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "datagen_http_request_duration_seconds",
			Help: "HTTP request handling duration in seconds, by route",
		},
		[]string{"route"},
	)
)

// ObserveRequest records one served request.
func ObserveRequest(route string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
