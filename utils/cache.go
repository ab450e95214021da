// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"enersense/config"

	"github.com/go-redis/redis/v8"
)

// AIContextCacheClient is the dedicated client for chat-context caching.
var AIContextCacheClient *redis.Client

// InitAIContextCache initializes the Redis client used to hold per-user
// conversation history for the chatbot.
func InitAIContextCache() {
	AIContextCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAIDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AIContextCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (AI Context Cache): %v", err)
	}
}

// GetAIContextCacheClient returns the chat-context cache client.
func GetAIContextCacheClient() *redis.Client {
	if AIContextCacheClient == nil {
		InitAIContextCache()
	}
	return AIContextCacheClient
}
