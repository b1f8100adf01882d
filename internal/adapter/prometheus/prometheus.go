package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusAdapter struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusAdapter registers the HTTP collectors on the default registry.
func NewPrometheusAdapter() *PrometheusAdapter {
	return NewPrometheusAdapterWithRegisterer(prometheus.DefaultRegisterer)
}

func NewPrometheusAdapterWithRegisterer(reg prometheus.Registerer) *PrometheusAdapter {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bikes4u",
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests handled, by route, method and status.",
	}, []string{"route", "method", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bikes4u",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	reg.MustRegister(requests, duration)

	return &PrometheusAdapter{
		requests: requests,
		duration: duration,
	}
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := c.Request.Method

	p.requests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
	p.duration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
}
