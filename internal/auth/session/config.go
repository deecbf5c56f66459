package session

import (
	"os"
	"strings"
	"time"
)

// CookieName is the fixed cookie carrying the session token. It is shared
// between issuance (login) and validation (logout), so it lives here rather
// than in the HTTP layer.
const CookieName = "jwt"

// Config defines the runtime configuration of the token service.
//
// The signing secret is loaded once at startup and never rotated during the
// process lifetime; it is carried explicitly in this struct instead of any
// process-global state.
type Config struct {
	// Secret is the HMAC signing key. Required.
	Secret string

	// TTL is the token lifetime from issue time.
	TTL time.Duration

	// Issuer is the value set in the "iss" claim of issued tokens.
	Issuer string

	// Leeway is the allowed clock skew during expiry validation.
	Leeway time.Duration
}

// DefaultConfig returns defaults for everything except the secret, which has
// no safe default and must come from the environment.
func DefaultConfig() Config {
	return Config{
		TTL:    time.Hour,
		Issuer: "authd",
		Leeway: 30 * time.Second,
	}
}

// LoadConfigFromEnv loads token configuration from environment variables.
//
// Required:
//   - JWT_SECRET
//
// Optional (durations must be valid Go duration strings):
//   - AUTHD_TOKEN_TTL
//   - AUTHD_TOKEN_ISSUER
//   - AUTHD_TOKEN_LEEWAY
//
// Returns ErrConfig when the secret is missing/blank or a value is invalid.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.Secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if cfg.Secret == "" {
		return Config{}, ErrConfig
	}

	if v := os.Getenv("AUTHD_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, ErrConfig
		}
		cfg.TTL = d
	}

	if v := strings.TrimSpace(os.Getenv("AUTHD_TOKEN_ISSUER")); v != "" {
		cfg.Issuer = v
	}

	if v := os.Getenv("AUTHD_TOKEN_LEEWAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, ErrConfig
		}
		cfg.Leeway = d
	}

	return cfg, nil
}
