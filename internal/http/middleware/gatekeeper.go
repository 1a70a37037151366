package middleware

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	// TokenHeader carries the shared edge-to-origin secret.
	TokenHeader = "X-RateLimit-Token"

	headerForwardedFor = "X-Forwarded-For"
	headerRealIP       = "X-Real-IP"

	checkTimeout     = 2 * time.Second
	maxRelayBodySize = 4 << 10

	limiterUnavailableBody = `{"error":"rate limit exceeded"}`
)

// relayedHeaders are copied from a deny response onto ours.
var relayedHeaders = []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"}

// Gatekeeper delegates the admit/deny decision for every request to the
// rate-limit check endpoint. It holds no limiting algorithm of its own:
// 200 means continue, 429 is relayed, and anything else - including a
// limiter that cannot be reached - denies the request (fail closed).
type Gatekeeper struct {
	checkURL string
	token    string
	client   *http.Client
	excluded []string
}

func NewGatekeeper(checkURL, token string, excludedPrefixes []string) *Gatekeeper {
	return &Gatekeeper{
		checkURL: checkURL,
		token:    token,
		client:   &http.Client{Timeout: checkTimeout},
		excluded: excludedPrefixes,
	}
}

func (g *Gatekeeper) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range g.excluded {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodPost, g.checkURL, nil)
			if err != nil {
				return g.deny(c, nil)
			}

			req.Header.Set(TokenHeader, g.token)
			req.Header.Set(headerRealIP, c.RealIP())
			if forwarded := c.Request().Header.Get(headerForwardedFor); forwarded != "" {
				req.Header.Set(headerForwardedFor, forwarded)
			}

			resp, err := g.client.Do(req)
			if err != nil {
				return g.deny(c, nil)
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusOK {
				return next(c)
			}
			return g.deny(c, resp)
		}
	}
}

// deny returns 429, relaying the limiter's own headers and body when a
// deny response is available.
func (g *Gatekeeper) deny(c echo.Context, resp *http.Response) error {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return c.JSONBlob(http.StatusTooManyRequests, []byte(limiterUnavailableBody))
	}

	for _, header := range relayedHeaders {
		if value := resp.Header.Get(header); value != "" {
			c.Response().Header().Set(header, value)
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRelayBodySize))
	if err != nil || len(body) == 0 {
		return c.JSONBlob(http.StatusTooManyRequests, []byte(limiterUnavailableBody))
	}
	return c.JSONBlob(http.StatusTooManyRequests, body)
}
