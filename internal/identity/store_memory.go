package identity

import (
	"context"
	"fmt"
	"sync"
)

// MemoryUserStore is the volatile, process-lifetime user store.
//
// A single long-lived instance is shared by reference across request-handling
// goroutines. Reads proceed concurrently; writes are exclusive. No operation
// acquires more than this one lock, and the lock is never held across I/O.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[Email]User
}

// NewMemoryUserStore constructs an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[Email]User),
	}
}

// AddUser inserts a user record; the check-then-insert runs under the write lock.
func (s *MemoryUserStore) AddUser(ctx context.Context, user User) error {
	if user.Email.IsZero() || user.Password.IsZero() {
		return fmt.Errorf("identity.AddUser: %w", ErrInvalidCredentials)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return fmt.Errorf("identity.AddUser: %w", ErrUserExists)
	}
	s.users[user.Email] = user
	return nil
}

// GetUser loads a user record by email.
func (s *MemoryUserStore) GetUser(ctx context.Context, email Email) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return User{}, fmt.Errorf("identity.GetUser: %w", ErrUserNotFound)
	}
	return u, nil
}

// ValidateCredentials checks the password for the given email in constant time.
func (s *MemoryUserStore) ValidateCredentials(ctx context.Context, email Email, password Password) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return fmt.Errorf("identity.ValidateCredentials: %w", ErrUserNotFound)
	}
	if !u.Password.Equal(password) {
		return fmt.Errorf("identity.ValidateCredentials: %w", ErrInvalidCredentials)
	}
	return nil
}

// Len reports the number of stored records.
func (s *MemoryUserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
