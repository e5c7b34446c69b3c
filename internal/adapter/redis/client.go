// Package redis holds the optional Redis-backed caches.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/config"
)

// NewClient connects to Redis. An empty URL disables caching and returns a
// nil client without error.
func NewClient(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*redis.Client, error) {
	if cfg.URL == "" {
		logger.Info("redis: no URL configured, caching disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}

	logger.Info("redis: connected, caching enabled", slog.String("addr", opts.Addr))
	return rdb, nil
}
