package session

import (
	"context"
	"sync"
)

// MemoryBannedTokenStore is the volatile, process-lifetime revocation set.
//
// Entries are never removed; they go inert once the token's own expiry
// passes. The unbounded growth is an accepted tradeoff at this scope.
type MemoryBannedTokenStore struct {
	mu     sync.RWMutex
	banned map[string]struct{}
}

// NewMemoryBannedTokenStore constructs an empty in-memory revocation set.
func NewMemoryBannedTokenStore() *MemoryBannedTokenStore {
	return &MemoryBannedTokenStore{
		banned: make(map[string]struct{}),
	}
}

// Add inserts a raw token string under the write lock.
func (s *MemoryBannedTokenStore) Add(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.banned[token] = struct{}{}
	return nil
}

// IsBanned is a membership test under the read lock.
func (s *MemoryBannedTokenStore) IsBanned(ctx context.Context, token string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.banned[token]
	return ok, nil
}

// Len reports the number of revoked tokens.
func (s *MemoryBannedTokenStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.banned)
}
