// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"coursebot/config"

	"github.com/go-redis/redis/v8"
)

var (
	// DialogCacheClient holds in-progress dialog sessions.
	DialogCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for admin authorization caching.
	AuthCacheClient *redis.Client
)

// InitDialogCache initializes the Redis client for dialog session state.
func InitDialogCache() {
	DialogCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDialogDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := DialogCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Dialog Cache): %v", err)
	}
}

// GetDialogCacheClient returns the dialog session cache client.
func GetDialogCacheClient() *redis.Client {
	if DialogCacheClient == nil {
		InitDialogCache()
	}
	return DialogCacheClient
}

// InitAuthCache initializes the Redis client for admin authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for admin authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
