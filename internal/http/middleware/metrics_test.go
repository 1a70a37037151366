package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personacast/pkg/metrics"
)

func TestMetrics_RecordsSuccessStatus(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/metrics-test-ok")

	h := Metrics()(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, h(c))

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test-ok", "204")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))
}

func TestMetrics_RecordsErrorStatus(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/metrics-test-missing")

	h := Metrics()(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "no such thing")
	})
	require.NoError(t, h(c))

	// The error response is written before the status is sampled, so the
	// counter carries the code the client saw rather than a default 200.
	assert.Equal(t, http.StatusNotFound, rec.Code)
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test-missing", "404")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))
}
