package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is the dependency probed by the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthHandler(db Pinger, timeout time.Duration) *HealthHandler {
	return &HealthHandler{db: db, timeout: timeout}
}

type HealthResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Check probes the database within a bounded window so a wedged pool
// cannot hang the load balancer.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		msg := "database unreachable"
		if errors.Is(err, context.DeadlineExceeded) {
			msg = "database health check timed out"
		}
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Success: false, Error: msg})
	}
	return c.JSON(http.StatusOK, HealthResponse{Success: true})
}
