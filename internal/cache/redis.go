package cache

import (
	"context"
	"fmt"
	"time"

	"dev-quizz/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates and returns a new Redis client instance.
// It pings the server to ensure connectivity.
func NewRedisClient(redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("redis configuration is missing or address is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Address,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", redisCfg.Address, err)
	}

	return client, nil
}
