package session

import "context"

// BannedTokenStore abstracts the revocation set.
//
// Implementations must support concurrent readers with a single mutator at a
// time. Callers always operate on one shared instance; the set is never
// copied per request, since mutations to a copy would not persist.
type BannedTokenStore interface {
	// Add inserts a raw token string into the revoked set.
	Add(ctx context.Context, token string) error

	// IsBanned reports whether the raw token string has been revoked.
	IsBanned(ctx context.Context, token string) (bool, error)
}
