// Package session implements the session token lifecycle.
//
// Tokens are signed JWTs (HS256) carrying the subject email and a fixed TTL.
// A token is accepted only when its signature verifies, it is unexpired, and
// it is absent from the banned-token store; the three checks are mandatory.
//
// Revocation is a grow-only set of raw token strings. Entries become inert
// once the token's own expiry passes; the in-memory store accepts the
// unbounded growth, the Redis variant expires entries alongside the token.
package session
