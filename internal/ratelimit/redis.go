package ratelimit

import (
	"context"
	"time"
)

// Counter is the slice of the redis client the window limiter needs.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// RedisLimiter counts requests per key in a fixed window. A backend
// error propagates so the caller can fail closed.
type RedisLimiter struct {
	counter Counter
	limit   int
	window  time.Duration
}

func NewRedisLimiter(counter Counter, requestsPerWindow int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		counter: counter,
		limit:   requestsPerWindow,
		window:  window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	count, err := l.counter.Incr(ctx, "ratelimit:"+key, l.window)
	if err != nil {
		return Decision{}, err
	}

	if count > int64(l.limit) {
		retryAfter, err := l.counter.TTL(ctx, "ratelimit:"+key)
		if err != nil || retryAfter <= 0 {
			retryAfter = l.window
		}
		return Decision{
			Allowed:    false,
			Limit:      l.limit,
			Remaining:  0,
			RetryAfter: retryAfter,
		}, nil
	}

	return Decision{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit - int(count),
	}, nil
}
