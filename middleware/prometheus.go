package middleware

import (
	"Foodgram/pkg/context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	viewerAnonymous = "anonymous"
	viewerUser      = "user"
	routeUnmatched  = "unmatched"
)

var (
	// 按路由模板统计请求数，status 只记录分类（2xx/4xx/5xx）以控制基数
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodgram",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route template, status class and viewer type",
		},
		[]string{"method", "route", "status", "viewer"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "foodgram",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route template",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "foodgram",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "HTTP requests currently being served",
	})
)

// PrometheusMiddleware 需挂在鉴权中间件之外，viewer 在 c.Next 之后读取
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = routeUnmatched
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, statusClass(c.Writer.Status()), viewerType(c)).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}

func viewerType(c *gin.Context) string {
	if _, err := context.GetUserID(c); err != nil {
		return viewerAnonymous
	}
	return viewerUser
}
