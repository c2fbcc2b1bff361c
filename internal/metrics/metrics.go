// Package metrics exposes Prometheus metrics for the HTTP layer and for the
// pages served from paginated resources.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fuzumoe/gopaginate/internal/pagination"
)

// Metrics holds all Prometheus collectors of the service.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	pagesServedTotal *prometheus.CounterVec
	pageSize         *prometheus.HistogramVec
	pageNumber       *prometheus.HistogramVec
}

// New creates the collectors on a dedicated registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gopaginate_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gopaginate_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		pagesServedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gopaginate_pages_served_total",
				Help: "Total number of pages served per resource",
			},
			[]string{"resource"},
		),
		pageSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gopaginate_page_size",
				Help:    "Page sizes served per resource after normalization",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"resource"},
		),
		pageNumber: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gopaginate_page_number",
				Help:    "Page numbers served per resource after normalization",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"resource"},
		),
	}
}

// ObservePage records a page served from resource.
func (m *Metrics) ObservePage(resource string, page pagination.Page) {
	m.pagesServedTotal.WithLabelValues(resource).Inc()
	m.pageSize.WithLabelValues(resource).Observe(float64(page.Size))
	m.pageNumber.WithLabelValues(resource).Observe(float64(page.Number))
}

// Middleware records request counts and latencies by route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
