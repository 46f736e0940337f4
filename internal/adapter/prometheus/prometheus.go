package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusAdapter struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	backendCalls    *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
}

// NewPrometheusAdapter registers the collectors on reg. Servers pass
// prometheus.DefaultRegisterer so /metrics picks them up.
func NewPrometheusAdapter(reg prometheus.Registerer) *PrometheusAdapter {
	factory := promauto.With(reg)

	return &PrometheusAdapter{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "webike_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "webike_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		backendCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "webike_backend_calls_total",
			Help: "Calls made to the bicycles backend by outcome",
		}, []string{"operation", "outcome"}),
		backendDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "webike_backend_call_duration_seconds",
			Help:    "Latency of calls to the bicycles backend",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := c.Request.Method

	p.requestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
	p.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (p *PrometheusAdapter) RecordBackendCall(operation string, outcome string, start time.Time) {
	p.backendCalls.WithLabelValues(operation, outcome).Inc()
	p.backendDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
