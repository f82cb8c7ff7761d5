package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records request counts and latencies for mounted modules.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if collectors with the same names are already registered.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"module", "method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of response latency (seconds) for HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"module", "method"},
		),
	}

	reg.MustRegister(m.requests, m.duration)
	return m
}

// Middleware instruments requests served by the named module.
func (m *Metrics) Middleware(module string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			method := methodLabel(r.Method)
			m.requests.WithLabelValues(module, method, strconv.Itoa(sw.status)).Inc()
			m.duration.WithLabelValues(module, method).Observe(time.Since(start).Seconds())
		})
	}
}

// methodLabel bounds the method label to the standard methods; anything else is "other".
func methodLabel(method string) string {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return http.MethodGet
	case http.MethodHead:
		return http.MethodHead
	case http.MethodPost:
		return http.MethodPost
	case http.MethodPut:
		return http.MethodPut
	case http.MethodPatch:
		return http.MethodPatch
	case http.MethodDelete:
		return http.MethodDelete
	case http.MethodConnect:
		return http.MethodConnect
	case http.MethodOptions:
		return http.MethodOptions
	case http.MethodTrace:
		return http.MethodTrace
	default:
		return "other"
	}
}
