package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBannedTokenStore is the pluggable revocation backend for deployments
// that want the banned set to survive a process restart.
//
// Keys carry a TTL equal to the token lifetime, so a revoked entry expires
// together with the token it bans and the set stays bounded. Tokens are keyed
// by digest to keep raw bearer credentials out of the keyspace.
type RedisBannedTokenStore struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisBannedTokenStore constructs a Redis-backed revocation set.
// The client lifecycle is owned by the caller. A non-positive ttl means
// entries never expire.
func NewRedisBannedTokenStore(rdb redis.Cmdable, prefix string, ttl time.Duration) *RedisBannedTokenStore {
	if prefix == "" {
		prefix = "authd"
	}
	return &RedisBannedTokenStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Add inserts the token's digest with the configured TTL.
func (s *RedisBannedTokenStore) Add(ctx context.Context, token string) error {
	var expiry time.Duration
	if s.ttl > 0 {
		expiry = s.ttl
	}
	if err := s.rdb.Set(ctx, s.key(token), "1", expiry).Err(); err != nil {
		return fmt.Errorf("session: ban token: %w", err)
	}
	return nil
}

// IsBanned reports whether the token's digest is present.
func (s *RedisBannedTokenStore) IsBanned(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("session: check banned token: %w", err)
	}
	return n > 0, nil
}

func (s *RedisBannedTokenStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return s.prefix + ":banned:" + hex.EncodeToString(sum[:])
}
