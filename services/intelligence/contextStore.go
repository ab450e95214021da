// File: enersense/services/intelligence/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"enersense/models"

	"github.com/go-redis/redis/v8"
)

const aiContextPrefix = "ai:ctx:"

// maxHistoryTurns bounds how many stored messages are replayed to the
// model; older turns fall off the front.
const maxHistoryTurns = 20

// RedisContextStore keeps per-user conversation history with a TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	key := aiContextPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return []models.ChatMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	var history []models.ChatMessage
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, history []models.ChatMessage) error {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	key := aiContextPrefix + userID
	b, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	key := aiContextPrefix + userID
	return s.client.Del(ctx, key).Err()
}
