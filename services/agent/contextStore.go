// File: services/agent/contextStore.go
package agent

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"schedly/models"
	"schedly/utils"
)

// ContextStore persists conversation contexts for the HTTP surface, keyed by
// conversation id. The turn API itself stays stateless; callers that manage
// their own context never touch the store.
type ContextStore interface {
	Get(ctx context.Context, conversationID string) (models.ConversationContext, error)
	Set(ctx context.Context, conversationID string, conv models.ConversationContext) error
	Clear(ctx context.Context, conversationID string) error
}

// RedisContextStore keeps contexts in Redis with a TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	if ttl <= 0 {
		ttl = utils.DefaultSessionTTL
	}
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, conversationID string) (models.ConversationContext, error) {
	key := utils.SessionCachePrefix + conversationID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return models.ConversationContext{}, nil
	}
	if err != nil {
		return models.ConversationContext{}, err
	}
	var conv models.ConversationContext
	if err := json.Unmarshal([]byte(data), &conv); err != nil {
		return models.ConversationContext{}, err
	}
	return conv, nil
}

func (s *RedisContextStore) Set(ctx context.Context, conversationID string, conv models.ConversationContext) error {
	key := utils.SessionCachePrefix + conversationID
	b, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, conversationID string) error {
	key := utils.SessionCachePrefix + conversationID
	return s.client.Del(ctx, key).Err()
}

// MemoryContextStore is the fallback store used when Redis is unreachable.
type MemoryContextStore struct {
	mu    sync.Mutex
	convs map[string]models.ConversationContext
}

func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{convs: make(map[string]models.ConversationContext)}
}

func (s *MemoryContextStore) Get(_ context.Context, conversationID string) (models.ConversationContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.convs[conversationID], nil
}

func (s *MemoryContextStore) Set(_ context.Context, conversationID string, conv models.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.convs[conversationID] = conv
	return nil
}

func (s *MemoryContextStore) Clear(_ context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.convs, conversationID)
	return nil
}
