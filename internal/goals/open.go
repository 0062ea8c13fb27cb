package goals

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AlexanderJohnD/WealthWise/internal/config"
)

// Open returns the goal repository selected by GOAL_STORE together with a
// function that releases its resources.
func Open(ctx context.Context, cfg *config.Config) (Repository, func() error, error) {
	switch cfg.GoalStore {
	case config.GoalStoreFile:
		return NewFileRepository(cfg.GoalsDir), func() error { return nil }, nil

	case config.GoalStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisRepository(client), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported GOAL_STORE %q (use %s or %s)",
			cfg.GoalStore, config.GoalStoreFile, config.GoalStoreRedis)
	}
}
