// Package metrics exposes Prometheus collectors for the HTTP surface and the
// row source.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "assessment_board"

// Recorder owns a private registry so tests can build as many as they like.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	rowsFetched         *prometheus.CounterVec
	fetchFailures       *prometheus.CounterVec
	rowsReturned        *prometheus.HistogramVec
}

func New() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(reg)

	return &Recorder{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		rowsFetched: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "rows_fetched_total",
			Help:      "Rows read from the database per dataset.",
		}, []string{"dataset"}),
		fetchFailures: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "fetch_failures_total",
			Help:      "Failed dataset fetches.",
		}, []string{"dataset"}),
		rowsReturned: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "rows_returned",
			Help:      "Rows left after filtering, per view.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"view"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Recorder) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveFetch records the outcome of one dataset fetch.
func (m *Recorder) ObserveFetch(dataset string, rows int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.fetchFailures.WithLabelValues(dataset).Inc()
		return
	}
	m.rowsFetched.WithLabelValues(dataset).Add(float64(rows))
}

// ObserveResult records how many rows a view returned.
func (m *Recorder) ObserveResult(view string, rows int) {
	if m == nil {
		return
	}
	m.rowsReturned.WithLabelValues(view).Observe(float64(rows))
}

// Middleware counts requests and their latency by matched route.
func (m *Recorder) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		route := c.Route().Path
		m.httpRequests.WithLabelValues(route, c.Method(), strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(route, c.Method()).Observe(time.Since(start).Seconds())
		return err
	}
}
