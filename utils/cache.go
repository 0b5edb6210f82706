// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"schedly/config"
)

// SessionCacheClient is the Redis client backing the conversation context store.
// It stays nil when Redis is unreachable; callers fall back to in-memory storage.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for conversation context storage.
// Unlike a hard dependency, an unreachable Redis is not fatal: the server keeps
// running with the in-memory context store instead.
func InitSessionCache() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis unavailable, conversation contexts will be kept in memory",
			zap.String("addr", config.AppConfig.RedisAddr), zap.Error(err))
		return nil
	}
	SessionCacheClient = client
	return client
}

// GetSessionCacheClient returns the Redis client for conversation context storage,
// or nil when Redis is unavailable.
func GetSessionCacheClient() *redis.Client {
	return SessionCacheClient
}
