package security

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
	"github.com/redis/go-redis/v9"
)

// MemoryRevocationStore keeps revoked token ids in process memory.
// Entries are dropped once their token has expired.
type MemoryRevocationStore struct {
	mu           sync.Mutex
	revoked      map[string]time.Time
	timeProvider coreport.TimeProvider
}

// NewMemoryRevocationStore creates an empty in-memory store
func NewMemoryRevocationStore(timeProvider coreport.TimeProvider) security.RevocationStore {
	return &MemoryRevocationStore{
		revoked:      make(map[string]time.Time),
		timeProvider: timeProvider,
	}
}

// Revoke marks tokenID as revoked until expiresAt
func (s *MemoryRevocationStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpired()
	s.revoked[tokenID] = expiresAt
	return nil
}

// IsRevoked reports whether tokenID was revoked and has not expired yet
func (s *MemoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !s.timeProvider.Now().Before(expiresAt) {
		delete(s.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

// purgeExpired must be called with mu held
func (s *MemoryRevocationStore) purgeExpired() {
	now := s.timeProvider.Now()
	for id, expiresAt := range s.revoked {
		if !now.Before(expiresAt) {
			delete(s.revoked, id)
		}
	}
}

// RedisCommander is the subset of the go-redis client used by RedisRevocationStore
type RedisCommander interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisRevocationStore keeps revoked token ids in redis with a TTL matching the token expiry
type RedisRevocationStore struct {
	client       RedisCommander
	keyPrefix    string
	timeProvider coreport.TimeProvider
}

// NewRedisRevocationStore creates a redis backed store
func NewRedisRevocationStore(client RedisCommander, keyPrefix string, timeProvider coreport.TimeProvider) security.RevocationStore {
	return &RedisRevocationStore{
		client:       client,
		keyPrefix:    keyPrefix,
		timeProvider: timeProvider,
	}
}

// Revoke stores tokenID until expiresAt. Already expired tokens are not stored.
func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.timeProvider.Now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID is stored
func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

func (s *RedisRevocationStore) key(tokenID string) string {
	return s.keyPrefix + tokenID
}

// NewRedisClient connects to redis and pings it
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
