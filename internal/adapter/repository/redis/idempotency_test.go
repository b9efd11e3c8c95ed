package redis

import (
	"context"
	"testing"
	"time"
)

func TestIdempotencyCheckAndSetFirstRequest(t *testing.T) {
	store := NewIdempotencyStore(newTestRedisClient(t))
	ctx := context.Background()

	exists, existing, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if exists {
		t.Fatalf("expected first request to claim the key, got existing %q", existing)
	}
}

func TestIdempotencyCheckAndSetDuplicate(t *testing.T) {
	store := NewIdempotencyStore(newTestRedisClient(t))
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "key-1", []byte("response-1"), time.Minute); err != nil {
		t.Fatalf("first check failed: %v", err)
	}

	exists, existing, err := store.CheckAndSet(ctx, "key-1", []byte("response-2"), time.Minute)
	if err != nil {
		t.Fatalf("second check failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected duplicate to be detected")
	}
	if string(existing) != "response-1" {
		t.Fatalf("expected stored response-1, got %q", existing)
	}
}

func TestIdempotencyUpdate(t *testing.T) {
	store := NewIdempotencyStore(newTestRedisClient(t))
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute); err != nil {
		t.Fatalf("check failed: %v", err)
	}

	if err := store.Update(ctx, "key-1", []byte("final"), time.Minute); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	exists, existing, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("recheck failed: %v", err)
	}
	if !exists || string(existing) != "final" {
		t.Fatalf("expected final response, got exists=%v value=%q", exists, existing)
	}
}
