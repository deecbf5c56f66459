package identity

import "strings"

// Email is a validated, normalized email address.
//
// The zero value is not a valid email; construct via ParseEmail. Email is
// comparable and is used directly as the user store key.
type Email struct {
	value string
}

// ParseEmail validates and normalizes a raw email string.
//
// Validation is syntactic only: the address must contain '@' and a domain
// separator '.', and be longer than 5 characters after normalization. No
// DNS or deliverability checks are performed.
func ParseEmail(raw string) (Email, error) {
	v := NormalizeEmail(raw)
	if len(v) <= 5 || !strings.Contains(v, "@") || !strings.Contains(v, ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

// NormalizeEmail performs case-insensitive canonicalization.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// String returns the normalized address.
func (e Email) String() string { return e.value }

// IsZero reports whether e was not constructed via ParseEmail.
func (e Email) IsZero() bool { return e.value == "" }
