package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records rate, errors and duration of requests in provided registry
func Metrics(reg prometheus.Registerer) echo.MiddlewareFunc {
	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestErrorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_errors_total",
			Help: "Total number of HTTP request errors",
		},
		[]string{"method", "path", "status", "error_type"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	reg.MustRegister(requestsTotal, requestErrorsTotal, requestDuration)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			statusStr := strconv.Itoa(status)
			method := c.Request().Method
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			requestsTotal.WithLabelValues(method, path, statusStr).Inc()

			switch {
			case status >= 500:
				requestErrorsTotal.WithLabelValues(method, path, statusStr, "server").Inc()
			case status >= 400:
				requestErrorsTotal.WithLabelValues(method, path, statusStr, "client").Inc()
			}

			requestDuration.WithLabelValues(method, path, statusStr).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
