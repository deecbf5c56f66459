package identity

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
)

// StrengthFunc estimates a password strength score on the zxcvbn 0..4 scale.
// It is a pluggable collaborator: a failing or panicking estimator must not
// take the service down, so ParsePassword treats any failure as "not strong
// enough".
type StrengthFunc func(password string) (score int, err error)

// ZxcvbnStrength scores a password with the zxcvbn estimator.
func ZxcvbnStrength(password string) (int, error) {
	return zxcvbn.PasswordStrength(password, nil).Score, nil
}

// PasswordPolicy controls password acceptance at construction time.
type PasswordPolicy struct {
	// MinLength is the minimum number of characters (runes, not bytes).
	MinLength int

	// MinScore is the minimum strength score. Zero disables the strength check.
	MinScore int

	// Strength is the estimator consulted when MinScore > 0.
	Strength StrengthFunc
}

// DefaultPasswordPolicy returns the policy used in production: minimum 8
// characters, strength scoring available but not enforced.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength: 8,
		MinScore:  0,
		Strength:  ZxcvbnStrength,
	}
}

// Password is a validated password. The zero value is not valid; construct
// via ParsePassword. The raw value is deliberately unexported and excluded
// from String and slog output.
type Password struct {
	value string
}

// ParsePassword validates a raw password against the policy.
func ParsePassword(raw string, policy PasswordPolicy) (Password, error) {
	min := policy.MinLength
	if min <= 0 {
		min = 8
	}
	if utf8.RuneCountInString(raw) < min {
		return Password{}, ErrInvalidPassword
	}

	if policy.MinScore > 0 && policy.Strength != nil {
		score, err := estimate(policy.Strength, raw)
		if err != nil || score < policy.MinScore {
			return Password{}, ErrInvalidPassword
		}
	}

	return Password{value: raw}, nil
}

// estimate shields callers from estimator panics; a panic counts as failure.
func estimate(fn StrengthFunc, raw string) (score int, err error) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
			err = fmt.Errorf("strength estimator: %v", r)
		}
	}()
	return fn(raw)
}

// Equal compares two passwords in constant time.
func (p Password) Equal(other Password) bool {
	if len(p.value) == 0 || len(other.value) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(p.value), []byte(other.value)) == 1
}

// IsZero reports whether p was not constructed via ParsePassword.
func (p Password) IsZero() bool { return p.value == "" }

// String redacts the password value.
func (p Password) String() string { return "[redacted]" }

// LogValue redacts the password in slog output.
func (p Password) LogValue() slog.Value { return slog.StringValue("[redacted]") }
