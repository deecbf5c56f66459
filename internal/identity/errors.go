package identity

import "errors"

// Public, stable errors for callers.
var (
	// ErrInvalidEmail is returned when a raw string is not a plausible email address.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidPassword is returned when a raw password fails the policy
	// (too short, or below the minimum strength score).
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUserExists is returned when a user record with the same email already exists.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no user record matches the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when the user exists but the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// IsValidationError reports whether err is a credential-shape failure
// (malformed email or password), as opposed to a store-level failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEmail) || errors.Is(err, ErrInvalidPassword)
}
