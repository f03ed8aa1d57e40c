package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const revokedTokenKeyPrefix = "dashboard:revoked:"

// TokenStore remembers revoked access token IDs until the tokens would have expired anyway.
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type memoryTokenStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryTokenStore creates a process-local TokenStore.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{revoked: make(map[string]time.Time), now: time.Now}
}

func (s *memoryTokenStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, id)
		}
	}
	if expiresAt.After(now) {
		s.revoked[tokenID] = expiresAt
	}
	return nil
}

func (s *memoryTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.revoked[tokenID]
	return ok && exp.After(s.now()), nil
}

type redisTokenStore struct {
	client RedisClient
	now    func() time.Time
}

// NewRedisTokenStore creates a TokenStore shared by every instance pointing at the same Redis.
func NewRedisTokenStore(client RedisClient) TokenStore {
	return &redisTokenStore{client: client, now: time.Now}
}

func (s *redisTokenStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("%w: revoking token: %v", ErrDatabaseError, err)
	}
	return nil
}

func (s *redisTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: checking token: %v", ErrDatabaseError, err)
	}
	return n > 0, nil
}
