// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"hrp/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds in-progress booking sessions.
	SessionCacheClient *redis.Client
	// OrderCacheClient is the dedicated client for the order archive.
	OrderCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for booking sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for booking sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitOrderCache initializes the Redis client for the order archive.
func InitOrderCache() {
	OrderCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOrderDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := OrderCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Orders): %v", err)
	}
}

// GetOrderCacheClient returns the Redis client for the order archive.
func GetOrderCacheClient() *redis.Client {
	if OrderCacheClient == nil {
		InitOrderCache()
	}
	return OrderCacheClient
}

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	InitSessionCache()
	InitOrderCache()
}
