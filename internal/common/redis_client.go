package common

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SupremeBender/ajac-website/internal/config"
	"github.com/SupremeBender/ajac-website/internal/logging"
)

func NewRedisClient() *redis.Client {
	redisHost := config.Get("REDIS_HOST", "localhost")
	redisPort := config.Get("REDIS_PORT", "6379")
	redisPassword := config.Get("REDIS_PASSWORD", "")
	redisDB := config.GetInt("REDIS_DB", 0)

	addr := fmt.Sprintf("%s:%s", redisHost, redisPort)
	logging.Info("Initializing Redis client", "addr", addr, "db", redisDB)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     redisPassword,
		DB:           redisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("Failed to ping Redis, pool will retry", "error", err)
		return client
	}

	logging.Info("Connected to Redis")
	return client
}
