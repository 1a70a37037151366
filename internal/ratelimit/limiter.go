// Package ratelimit implements the backends behind the internal
// admit/deny endpoint that the gatekeeper middleware consults. The
// gatekeeper itself never runs an algorithm; it only relays this
// package's decision.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Decision is the outcome of one admit/deny check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether a keyed caller may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// MemoryLimiter is a per-key token bucket, used when no redis backend
// is configured. Buckets are kept for the lifetime of the process.
type MemoryLimiter struct {
	limiters sync.Map // key -> *rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewMemoryLimiter allows requestsPerWindow requests per window with a
// burst of the same size.
func NewMemoryLimiter(requestsPerWindow int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		rate:  rate.Limit(float64(requestsPerWindow) / window.Seconds()),
		burst: requestsPerWindow,
	}
}

func (l *MemoryLimiter) getLimiter(key string) *rate.Limiter {
	limiter, exists := l.limiters.Load(key)
	if !exists {
		limiter, _ = l.limiters.LoadOrStore(key, rate.NewLimiter(l.rate, l.burst))
	}
	return limiter.(*rate.Limiter)
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	limiter := l.getLimiter(key)

	if !limiter.Allow() {
		return Decision{
			Allowed:    false,
			Limit:      l.burst,
			Remaining:  0,
			RetryAfter: time.Second,
		}, nil
	}

	return Decision{
		Allowed:   true,
		Limit:     l.burst,
		Remaining: int(limiter.Tokens()),
	}, nil
}
