package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm/internal/logging"
	"go.opentelemetry.io/otel/trace"
)

const loggerKey = "logger"

// Logging writes one entry per request, request-scoped logger carries trace ids
func Logging(baseLogger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			spanCtx := trace.SpanFromContext(req.Context()).SpanContext()
			logger := baseLogger.WithFields(logrus.Fields{
				"trace_id":   spanCtx.TraceID().String(),
				"span_id":    spanCtx.SpanID().String(),
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"method":     req.Method,
				"path":       req.URL.Path,
			})
			c.Set(loggerKey, logger)
			c.SetRequest(req.WithContext(logging.WithLogger(req.Context(), logger)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.WithFields(logrus.Fields{
				"status":   c.Response().Status,
				"duration": time.Since(start).String(),
				"size":     c.Response().Size,
			}).Info("request completed")
			return err
		}
	}
}

// LoggerFrom returns request-scoped logger, standard logger is used outside of requests
func LoggerFrom(c echo.Context) *logrus.Entry {
	if logger, ok := c.Get(loggerKey).(*logrus.Entry); ok {
		return logger
	}
	return logging.FromContext(c.Request().Context())
}
