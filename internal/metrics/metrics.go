// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-api-selfservice/internal/domain"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK                = "ok"
	OutcomeUnauthenticated   = "unauthenticated"
	OutcomeInvalidCredential = "invalid_credential"
	OutcomeValidation        = "validation"
	OutcomeNotFound          = "not_found"
	OutcomeError             = "error"
)

// Collector records self-service outcomes and HTTP latency.
type Collector struct {
	operations   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "selfservice_operations_total",
			Help: "Self-service operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "selfservice_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route pattern and status code.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(c.operations, c.httpDuration)
	return c
}

func (c *Collector) RecordOperation(operation string, err error) {
	c.operations.WithLabelValues(operation, Outcome(err)).Inc()
}

// Outcome maps an operation error onto its label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrUnauthenticated):
		return OutcomeUnauthenticated
	case errors.Is(err, domain.ErrInvalidCredential):
		return OutcomeInvalidCredential
	case errors.Is(err, domain.ErrValidation):
		return OutcomeValidation
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}

// Instrument observes request latency. The route label is the chi pattern,
// so path parameters such as a phone number never become label values.
func (c *Collector) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		c.httpDuration.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
