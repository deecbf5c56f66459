package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// maxTokenBytes bounds incoming token strings before parsing.
const maxTokenBytes = 4096

// Service issues and validates session tokens.
//
// The token state machine is one-way: Issued -> valid while unexpired and
// unrevoked -> Expired or Revoked. Signing and verification are pure
// computations; only the revocation check touches shared state.
type Service struct {
	cfg    Config
	banned BannedTokenStore
}

// NewService constructs a Service from explicit configuration and a shared
// banned-token store handle.
func NewService(cfg Config, banned BannedTokenStore) (*Service, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("session: missing signing secret: %w", ErrConfig)
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("session: non-positive TTL: %w", ErrConfig)
	}
	if cfg.Leeway < 0 {
		return nil, fmt.Errorf("session: negative leeway: %w", ErrConfig)
	}
	if banned == nil {
		return nil, fmt.Errorf("session: nil banned-token store: %w", ErrConfig)
	}
	return &Service{cfg: cfg, banned: banned}, nil
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration { return s.cfg.TTL }

// Issue creates a signed token for the subject email, expiring at now+TTL.
func (s *Service) Issue(subjectEmail string, now time.Time) (token string, exp time.Time, err error) {
	if strings.TrimSpace(subjectEmail) == "" {
		return "", time.Time{}, fmt.Errorf("session: empty subject: %w", ErrInvalidToken)
	}

	exp = now.Add(s.cfg.TTL)
	claims := jwt.RegisteredClaims{
		Subject:   subjectEmail,
		Issuer:    s.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("session: sign token: %w", err)
	}
	return signed, exp, nil
}

// Validate verifies signature, expiry, and revocation status, in that order,
// and returns the subject email. All three checks must pass.
func (s *Service) Validate(ctx context.Context, token string, now time.Time) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" || len(token) > maxTokenBytes {
		return "", ErrInvalidToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.cfg.Leeway),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	claims := &jwt.RegisteredClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing algorithm: %s", t.Method.Alg())
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	banned, err := s.banned.IsBanned(ctx, token)
	if err != nil {
		return "", fmt.Errorf("session: revocation check: %w", err)
	}
	if banned {
		return "", ErrTokenRevoked
	}

	return claims.Subject, nil
}

// Revoke adds the raw token string to the shared banned-token store.
func (s *Service) Revoke(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidToken
	}
	return s.banned.Add(ctx, token)
}
