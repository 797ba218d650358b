// Package ratelimit provides the Redis-backed implementation of the
// rate-limiter capability interface.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"fittrack/config"
	"fittrack/internal/domain/service"
)

const keyPrefix = "ratelimit:"

// redisLimiter implements a fixed-window counter per key. State lives in
// Redis, never in-process, so replicas share one budget.
type redisLimiter struct {
	client   *redis.Client
	requests int
	window   time.Duration
	logger   *slog.Logger
}

// noopLimiter allows everything; used when rate limiting is not configured.
type noopLimiter struct{}

func (noopLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}

// New constructs the rate limiter from configuration. Without a Redis
// connection or with the limiter disabled it degrades to a no-op.
func New(cfg *config.Config, logger *slog.Logger) service.RateLimiter {
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled || cfg.Redis == nil {
		return noopLimiter{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	window := cfg.RateLimit.Window
	if window <= 0 {
		window = time.Minute
	}
	requests := cfg.RateLimit.Requests
	if requests <= 0 {
		requests = 60
	}

	return &redisLimiter{
		client:   client,
		requests: requests,
		window:   window,
		logger:   logger,
	}
}

// Allow counts the request against the key's current window.
// Infrastructure failures log and fail open: a broken limiter must not take
// the API down with it.
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := keyPrefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.Warn("Rate limiter unavailable, allowing request", slog.Any("error", err))

		return true, nil
	}

	// First hit in a window owns setting the expiry.
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.logger.Warn("Failed to set rate limit window", slog.Any("error", err))
		}
	}

	return count <= int64(l.requests), nil
}
