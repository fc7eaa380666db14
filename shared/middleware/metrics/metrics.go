// Package metrics exposes Prometheus collectors for the API: HTTP traffic
// and media ingestion outcomes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion outcomes.
const (
	IngestOK          = "ok"
	IngestEmpty       = "empty"
	IngestUnknownType = "unknown_type"
	IngestThumbnail   = "thumbnail_error"
	IngestStore       = "store_error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	mediaIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_ingested_total",
			Help: "Media uploads processed by the ingestor, by outcome",
		},
		[]string{"result"},
	)

	mediaIngestedBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "media_ingested_bytes_total",
			Help: "Bytes of originals and thumbnails written to the blob store",
		},
	)
)

// ObserveIngestion counts one ingestion attempt with the given outcome.
func ObserveIngestion(result string) {
	mediaIngestedTotal.WithLabelValues(result).Inc()
}

// ObserveIngestedBytes adds to the number of bytes stored.
func ObserveIngestedBytes(n int64) {
	mediaIngestedBytes.Add(float64(n))
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count, latency and in-flight requests.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		// Route pattern keeps board codes and ids out of the label set
		path := "unmatched"
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
