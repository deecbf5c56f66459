package identity

import "context"

// UserStore abstracts persistence for user records.
//
// Handlers depend on this capability rather than a concrete type so that the
// in-memory implementation can later be swapped for a persistent backend.
// Implementations must be safe for concurrent use.
type UserStore interface {
	// AddUser inserts a user record. The existence check and the insert are
	// atomic: two concurrent adds for the same email yield exactly one
	// success and one ErrUserExists.
	AddUser(ctx context.Context, user User) error

	// GetUser loads a user record by email. Returns ErrUserNotFound when absent.
	GetUser(ctx context.Context, email Email) (User, error)

	// ValidateCredentials checks a password against the stored record.
	// Returns ErrUserNotFound when the email is unknown and
	// ErrInvalidCredentials when the password does not match.
	ValidateCredentials(ctx context.Context, email Email, password Password) error
}
