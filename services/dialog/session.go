package dialog

import (
	"context"
	"encoding/json"
	"fmt"

	"coursebot/models"
	"coursebot/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore keeps per-conversation dialog state. One session per chat id;
// terminal transitions delete it.
type SessionStore interface {
	Get(ctx context.Context, chatID int64) (*models.DialogSession, error)
	Put(ctx context.Context, session *models.DialogSession) error
	Delete(ctx context.Context, chatID int64) error
}

// RedisSessionStore implements SessionStore on the dialog cache client,
// serializing the session as JSON with a sliding TTL.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a SessionStore backed by the given Redis client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("dialog:%d", chatID)
}

func (s *RedisSessionStore) Get(ctx context.Context, chatID int64) (*models.DialogSession, error) {
	data, err := s.client.Get(ctx, sessionKey(chatID)).Result()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dialog session: %w", err)
	}

	var session models.DialogSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse dialog session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, session *models.DialogSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal dialog session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.ChatID), data, utils.DialogSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store dialog session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, chatID int64) error {
	if err := s.client.Del(ctx, sessionKey(chatID)).Err(); err != nil {
		return fmt.Errorf("failed to delete dialog session: %w", err)
	}
	return nil
}
