package session

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfigFromEnv_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfigFromEnv(); !errors.Is(err, ErrConfig) {
		t.Fatalf("err=%v, want ErrConfig", err)
	}

	t.Setenv("JWT_SECRET", "   ")
	if _, err := LoadConfigFromEnv(); !errors.Is(err, ErrConfig) {
		t.Fatalf("blank secret err=%v, want ErrConfig", err)
	}
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("AUTHD_TOKEN_TTL", "")
	t.Setenv("AUTHD_TOKEN_ISSUER", "")
	t.Setenv("AUTHD_TOKEN_LEEWAY", "")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}
	if cfg.Secret != "a-real-secret" {
		t.Fatalf("Secret=%q", cfg.Secret)
	}
	if cfg.TTL != time.Hour {
		t.Fatalf("TTL=%v, want 1h", cfg.TTL)
	}
	if cfg.Issuer != "authd" {
		t.Fatalf("Issuer=%q, want authd", cfg.Issuer)
	}
	if cfg.Leeway != 30*time.Second {
		t.Fatalf("Leeway=%v, want 30s", cfg.Leeway)
	}
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("AUTHD_TOKEN_TTL", "15m")
	t.Setenv("AUTHD_TOKEN_ISSUER", "authd-test")
	t.Setenv("AUTHD_TOKEN_LEEWAY", "0s")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}
	if cfg.TTL != 15*time.Minute {
		t.Fatalf("TTL=%v, want 15m", cfg.TTL)
	}
	if cfg.Issuer != "authd-test" {
		t.Fatalf("Issuer=%q", cfg.Issuer)
	}
	if cfg.Leeway != 0 {
		t.Fatalf("Leeway=%v, want 0", cfg.Leeway)
	}
}

func TestLoadConfigFromEnv_RejectsBadDurations(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("AUTHD_TOKEN_TTL", "not-a-duration")

	if _, err := LoadConfigFromEnv(); !errors.Is(err, ErrConfig) {
		t.Fatalf("err=%v, want ErrConfig", err)
	}

	t.Setenv("AUTHD_TOKEN_TTL", "-1h")
	if _, err := LoadConfigFromEnv(); !errors.Is(err, ErrConfig) {
		t.Fatalf("negative ttl err=%v, want ErrConfig", err)
	}
}
