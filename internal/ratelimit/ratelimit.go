package ratelimit

import (
	"context"
	"strconv"
	"time"

	"aventra/internal/config"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window request counter kept in Redis. A nil *Limiter
// allows everything.
type Limiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func New(client *redis.Client, limit int64, window time.Duration) *Limiter {
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{client: client, limit: limit, window: window}
}

// NewFromConfig returns nil when no Redis address is configured.
func NewFromConfig(cfg config.Redis) *Limiter {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return New(client, cfg.RateLimit, cfg.RateLimitWindow)
}

// Allow counts one request for key in the current window and reports
// whether it is within the limit, along with the running count.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, int64, error) {
	if l == nil || l.client == nil {
		return true, 0, nil
	}

	k := windowKey(key, l.window, time.Now())
	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	n := incr.Val()
	return n <= l.limit, n, nil
}

// windowKey buckets requests by the window they fall in, so every key
// resets at a window boundary.
func windowKey(key string, window time.Duration, now time.Time) string {
	slot := now.UnixNano() / int64(window)
	return "rl:" + key + ":" + strconv.FormatInt(slot, 10)
}

func (l *Limiter) Limit() int64 {
	if l == nil {
		return 0
	}
	return l.limit
}

func (l *Limiter) Close() error {
	if l == nil || l.client == nil {
		return nil
	}
	return l.client.Close()
}
