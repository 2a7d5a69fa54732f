package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRefreshTokenUnknown signals that the presented jti is not the current
// one for the user: either it expired, was rotated away, or never existed.
var ErrRefreshTokenUnknown = errors.New("refresh token id unknown or rotated")

// RefreshTokenStore tracks the single currently-valid refresh-token id per
// user. Rotation replaces the stored id, so an old refresh token presented
// after a successful refresh is rejected.
type RefreshTokenStore interface {
	Save(ctx context.Context, userID, tokenID string, ttl time.Duration) error
	Verify(ctx context.Context, userID, tokenID string) error
	Revoke(ctx context.Context, userID string) error
}

type redisRefreshTokenStore struct {
	client *redis.Client
}

// NewRefreshTokenStore returns a Redis-backed implementation.
func NewRefreshTokenStore(client *redis.Client) RefreshTokenStore {
	return &redisRefreshTokenStore{client: client}
}

func refreshKey(userID string) string {
	return "refresh:" + userID
}

func (s *redisRefreshTokenStore) Save(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKey(userID), tokenID, ttl).Err()
}

func (s *redisRefreshTokenStore) Verify(ctx context.Context, userID, tokenID string) error {
	current, err := s.client.Get(ctx, refreshKey(userID)).Result()
	if err == redis.Nil {
		return ErrRefreshTokenUnknown
	}
	if err != nil {
		return err
	}
	if current != tokenID {
		return ErrRefreshTokenUnknown
	}
	return nil
}

func (s *redisRefreshTokenStore) Revoke(ctx context.Context, userID string) error {
	return s.client.Del(ctx, refreshKey(userID)).Err()
}
