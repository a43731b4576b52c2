// Package session tracks revoked session tokens so logout takes effect before
// the token expires.
package session

import (
	"context"
	"fmt"
	"time"

	"uniformshop-be/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Store interface {
	// Revoke marks the token id revoked until it would have expired anyway.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const keyPrefix = "uniformshop:revoked:"

type redisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client, now: time.Now}
}

// Connect builds a Redis client and checks it answers.
func Connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (s *redisStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}

	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err(); err != nil {
		logger.FromCtx(ctx).Error("failed to revoke session",
			zap.String("token_id", tokenID),
			zap.Error(err),
		)
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *redisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	n, err := s.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return n > 0, nil
}

type noopStore struct{}

// NewNoopStore is used without Redis. Logout then only clears the cookie.
func NewNoopStore() Store { return noopStore{} }

func (noopStore) Revoke(context.Context, string, time.Time) error { return nil }

func (noopStore) IsRevoked(context.Context, string) (bool, error) { return false, nil }
