package initializers

import (
	"context"
	"fmt"
	"time"

	"github.com/Kariqs/vastra-api/limiter"
	"github.com/redis/go-redis/v9"
)

// NewLoginLimiter returns nil when REDIS_ADDR is unset.
func NewLoginLimiter(ctx context.Context, cfg *Config) (*limiter.RedisFixedWindow, *redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}

	l, err := limiter.NewRedisFixedWindow(client, limiter.Config{
		Limit:  cfg.LoginRateLimit,
		Window: cfg.LoginRateWindow,
		Prefix: "vastra:login",
	})
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return l, client, nil
}
