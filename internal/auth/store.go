package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore persists issued token IDs. Presence of an ID is what keeps
// a token valid; revocation deletes it.
type TokenStore interface {
	Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string) error
}

const tokenKeyPrefix = "auth:token:"

type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore returns a Redis-backed token store.
func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKeyPrefix+tokenID, strconv.FormatInt(userID, 10), ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	count, err := s.client.Exists(ctx, tokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, tokenKeyPrefix+tokenID).Err()
}
