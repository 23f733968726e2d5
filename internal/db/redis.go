package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vesteevolta/backend/internal/config"
	"github.com/vesteevolta/backend/internal/logger"
)

// NewRedis returns nil when Redis is not configured or does not answer a
// ping; callers then fall back to in-memory rate limiting and no caching.
func NewRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Log.WithError(err).WithField("addr", cfg.Addr).Warn("redis unavailable, continuing without it")
		_ = client.Close()
		return nil
	}
	return client
}
