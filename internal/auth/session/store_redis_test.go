package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisBannedTokenStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisBannedTokenStore(rdb, "authd-test", ttl), mr
}

func TestRedisBannedTokenStore_AddAndCheck(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	ctx := context.Background()

	if err := store.Add(ctx, "some-raw-token"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	banned, err := store.IsBanned(ctx, "some-raw-token")
	if err != nil {
		t.Fatalf("IsBanned: %v", err)
	}
	if !banned {
		t.Fatalf("expected token to be banned")
	}

	banned, err = store.IsBanned(ctx, "different-token")
	if err != nil {
		t.Fatalf("IsBanned: %v", err)
	}
	if banned {
		t.Fatalf("expected unknown token to be allowed")
	}
}

func TestRedisBannedTokenStore_EntriesExpireWithTokenLifetime(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	ctx := context.Background()

	if err := store.Add(ctx, "short-lived"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	mr.FastForward(time.Hour + time.Minute)

	banned, err := store.IsBanned(ctx, "short-lived")
	if err != nil {
		t.Fatalf("IsBanned: %v", err)
	}
	if banned {
		t.Fatalf("expected entry to expire with the token lifetime")
	}
}

func TestRedisBannedTokenStore_WorksBehindServiceValidate(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	ctx := context.Background()

	svc, err := NewService(testConfig(), store)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	now := time.Now().UTC()
	tok, _, err := svc.Issue("a@b.com", now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := svc.Revoke(ctx, tok); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := svc.Validate(ctx, tok, now); err != ErrTokenRevoked {
		t.Fatalf("err=%v, want ErrTokenRevoked", err)
	}
}
