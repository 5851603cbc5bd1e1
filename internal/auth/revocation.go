package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "auth:revoked:" // auth:revoked:{jti}

// RevocationStore is a redis denylist of logged-out token ids. Keys expire
// with the token itself, so the list never holds more than the live window.
type RevocationStore struct {
	client *redis.Client
}

func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

func (s *RevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to deny.
		return nil
	}
	if err := s.client.Set(ctx, s.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := s.client.Get(ctx, s.key(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check revocation: %w", err)
	}
	return true, nil
}

func (s *RevocationStore) key(jti string) string {
	return revokedKeyPrefix + jti
}
