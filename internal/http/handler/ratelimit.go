package handler

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"personacast/internal/http/middleware"
	"personacast/internal/ratelimit"
	"personacast/pkg/logger"
	"personacast/pkg/metrics"
)

type RateLimitHandler struct {
	limiter ratelimit.Limiter
	token   string
}

func NewRateLimitHandler(limiter ratelimit.Limiter, token string) *RateLimitHandler {
	return &RateLimitHandler{limiter: limiter, token: token}
}

// Check is the internal admit/deny endpoint the gatekeeper middleware
// calls. It requires the shared token and keys the limit on the
// caller's forwarded client address.
func (h *RateLimitHandler) Check(c echo.Context) error {
	got := c.Request().Header.Get(middleware.TokenHeader)
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) != 1 {
		metrics.RateLimitDecisions.WithLabelValues("unauthorized").Inc()
		return respondError(c, http.StatusUnauthorized, "invalid rate limit token")
	}

	key := clientKey(c)
	decision, err := h.limiter.Allow(c.Request().Context(), key)
	if err != nil {
		// Backend failure denies: an unreachable limiter must not
		// open the gate.
		logger.FromContext(c).Warn("rate limit backend failure")
		metrics.RateLimitDecisions.WithLabelValues("error").Inc()
		return respondError(c, http.StatusTooManyRequests, "rate limit exceeded")
	}

	c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
	c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

	if !decision.Allowed {
		if decision.RetryAfter > 0 {
			c.Response().Header().Set("Retry-After", strconv.Itoa(int(decision.RetryAfter.Seconds())))
		}
		metrics.RateLimitDecisions.WithLabelValues("deny").Inc()
		return respondError(c, http.StatusTooManyRequests, "rate limit exceeded")
	}

	metrics.RateLimitDecisions.WithLabelValues("allow").Inc()
	return respondMessage(c, http.StatusOK, "continue")
}

func clientKey(c echo.Context) string {
	if ip := c.Request().Header.Get(echo.HeaderXRealIP); ip != "" {
		return ip
	}
	if ip := c.Request().Header.Get(echo.HeaderXForwardedFor); ip != "" {
		return ip
	}
	return c.RealIP()
}
