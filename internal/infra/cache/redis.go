package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"personacast/internal/config"
)

const connectTimeout = 5 * time.Second

// Redis wraps the go-redis client behind the narrow surface the rest of
// the application needs.
type Redis struct {
	client *redis.Client
}

// NewRedis connects and verifies the connection with a bounded ping.
func NewRedis(cfg *config.RedisConfig) (*Redis, error) {
	if cfg.Host == "" {
		return nil, errors.New("redis host cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:       cfg.Addr(),
		Password:   cfg.Password,
		DB:         cfg.DB,
		MaxRetries: cfg.MaxRetries,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client}, nil
}

// Incr increments key, setting its expiry on first increment so the key
// behaves as a fixed counting window.
func (r *Redis) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}

// TTL returns the remaining lifetime of key.
func (r *Redis) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
