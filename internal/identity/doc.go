// Package identity holds the credential value types (Email, Password), the
// User record, and the user store abstraction.
//
// Emails and passwords are validated at construction and immutable afterwards.
// Passwords are kept as validated plaintext for behavioral parity with the
// reference deployment; this is a known weakness (see DESIGN.md) and is the
// reason Password redacts itself everywhere it could be printed or logged.
package identity
