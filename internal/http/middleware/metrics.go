package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"personacast/pkg/metrics"
)

// Metrics records a counter and a duration histogram per request,
// labeled by method, route pattern and status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the
				// status label reflects what the client actually got.
				c.Error(err)
				err = nil
			}

			duration := time.Since(start).Seconds()
			method := c.Request().Method
			path := c.Path()
			status := strconv.Itoa(c.Response().Status)

			metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration)

			return err
		}
	}
}
