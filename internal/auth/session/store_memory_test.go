package session

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryBannedTokenStore_AddAndCheck(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryBannedTokenStore()

	if err := store.Add(ctx, "asldkfjasl;dkj"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Add(ctx, "woeiruowieulas"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len=%d, want 2", store.Len())
	}

	banned, err := store.IsBanned(ctx, "asldkfjasl;dkj")
	if err != nil {
		t.Fatalf("IsBanned: %v", err)
	}
	if !banned {
		t.Fatalf("expected token to be banned")
	}

	banned, err = store.IsBanned(ctx, "never-seen")
	if err != nil {
		t.Fatalf("IsBanned: %v", err)
	}
	if banned {
		t.Fatalf("expected unknown token to be allowed")
	}
}

func TestMemoryBannedTokenStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryBannedTokenStore()

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n byte) {
			defer wg.Done()
			tok := "token-" + string('a'+rune(n))
			if err := store.Add(ctx, tok); err != nil {
				t.Errorf("Add: %v", err)
			}
			if _, err := store.IsBanned(ctx, tok); err != nil {
				t.Errorf("IsBanned: %v", err)
			}
		}(byte(i))
	}
	wg.Wait()

	if store.Len() != writers {
		t.Fatalf("Len=%d, want %d", store.Len(), writers)
	}
}
