package auth

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrRefreshTokenInvalid = errors.New("invalid or expired refresh token")

// RefreshStore maps opaque refresh tokens to the email of their owner.
type RefreshStore interface {
	Save(ctx context.Context, token, email string, ttl time.Duration) error
	// Consume returns the owner and forgets the token.
	Consume(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

type refreshEntry struct {
	email     string
	expiresAt time.Time
}

type MemoryRefreshStore struct {
	mu     sync.Mutex
	tokens map[string]refreshEntry
}

func NewMemoryRefreshStore() *MemoryRefreshStore {
	return &MemoryRefreshStore{tokens: map[string]refreshEntry{}}
}

func (s *MemoryRefreshStore) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = refreshEntry{email: email, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryRefreshStore) Consume(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.tokens[token]
	delete(s.tokens, token)
	if !ok || time.Now().After(e.expiresAt) {
		return "", ErrRefreshTokenInvalid
	}
	return e.email, nil
}

func (s *MemoryRefreshStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

func (s *MemoryRefreshStore) removeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := time.Now()
	for token, e := range s.tokens {
		if now.After(e.expiresAt) {
			delete(s.tokens, token)
			removed++
		}
	}
	return removed
}

// StartCleaner drops expired tokens every interval until ctx is done.
func (s *MemoryRefreshStore) StartCleaner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.removeExpired(); n > 0 {
				log.Printf("🧹 removed %d expired refresh tokens", n)
			}
		}
	}
}

// RedisRefreshStore keeps tokens as keys with a TTL so redis expires them.
type RedisRefreshStore struct {
	rdb *redis.Client
}

func NewRedisRefreshStore(rdb *redis.Client) *RedisRefreshStore {
	return &RedisRefreshStore{rdb: rdb}
}

func refreshKey(token string) string {
	return "refresh:" + token
}

func (s *RedisRefreshStore) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	return s.rdb.Set(ctx, refreshKey(token), email, ttl).Err()
}

func (s *RedisRefreshStore) Consume(ctx context.Context, token string) (string, error) {
	email, err := s.rdb.GetDel(ctx, refreshKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRefreshTokenInvalid
	}
	return email, err
}

func (s *RedisRefreshStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, refreshKey(token)).Err()
}
