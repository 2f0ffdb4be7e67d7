package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether one more request for key fits in the current budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Config struct {
	Limit  int
	Window time.Duration
	Prefix string
}

// RedisFixedWindow counts requests per key in fixed windows shared by every
// API instance. Bursts of up to twice the limit are possible at a window edge.
type RedisFixedWindow struct {
	client *redis.Client
	config Config
}

func NewRedisFixedWindow(client *redis.Client, config Config) (*RedisFixedWindow, error) {
	if config.Limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", config.Limit)
	}
	if config.Window <= 0 {
		return nil, fmt.Errorf("rate window must be positive, got %s", config.Window)
	}
	if config.Prefix == "" {
		config.Prefix = "ratelimit"
	}
	return &RedisFixedWindow{client: client, config: config}, nil
}

func (w *RedisFixedWindow) windowKey(key string, now time.Time) string {
	slot := now.UnixNano() / int64(w.config.Window)
	return fmt.Sprintf("%s:%s:%d", w.config.Prefix, key, slot)
}

func (w *RedisFixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := w.windowKey(key, time.Now())

	pipe := w.client.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, w.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}

	return incr.Val() <= int64(w.config.Limit), nil
}
