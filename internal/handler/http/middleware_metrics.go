// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// httpMetrics holds the Prometheus collectors for the request pipeline.
//
// Each Handler owns its own registry so that tests can build handlers
// freely without tripping duplicate-registration panics on the global
// default registry.
type httpMetrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newHTTPMetrics() *httpMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &httpMetrics{
		registry: registry,

		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edge_http_requests_total",
				Help: "Total number of HTTP requests handled, by method and status code",
			},
			[]string{"method", "code"},
		),

		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "edge_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// withMetrics records a counter increment and a duration observation for
// every request that passes through the pipeline, including auth rejections.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		h.metrics.requests.WithLabelValues(r.Method, strconv.Itoa(lw.statusCode())).Inc()
		h.metrics.duration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

// metricsHandler exposes this handler's registry in the Prometheus text
// format.
func (h *Handler) metricsHandler() http.Handler {
	return promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{})
}
