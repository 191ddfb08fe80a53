package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	collectDuration prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sondeo_requests_total",
				Help: "Total number of handled HTTP requests",
			},
			[]string{"path", "status"},
		),
		collectDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "sondeo_stats_collection_duration_seconds",
				Help: "Duration of stats collection runs",
			},
		),
	}
	m.registry.MustRegister(m.requests, m.collectDuration)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) requestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requests.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
