package session

import "errors"

var (
	// ErrConfig is returned for invalid configuration.
	ErrConfig = errors.New("invalid config")

	// ErrInvalidToken is returned when a token fails signature or shape verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked is returned when the token is present in the banned-token store.
	ErrTokenRevoked = errors.New("token revoked")
)
