package app

import (
	"context"
	"fmt"

	redisClient "github.com/redis/go-redis/v9"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/memory"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/redis"
	"github.com/sm8ta/webike_bicycle_manager/internal/config"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/ports"
)

// NewCache connects to Redis when an address is configured and falls back
// to an in-process cache otherwise. The returned client is nil in the
// fallback case.
func NewCache(ctx context.Context, cfg *config.Redis, logger ports.LoggerPort) (ports.CachePort, *redisClient.Client, error) {
	if !cfg.Enabled() {
		logger.Warn("REDIS_ADDRESS not set, using in-memory cache", nil)
		return memory.NewCache(), nil, nil
	}

	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		redisConn.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Connected to Redis", map[string]interface{}{
		"addr": cfg.Address,
	})
	return redis.NewRedisAdapter(redisConn), redisConn, nil
}
