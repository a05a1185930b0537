package kv

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get missing: ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "k", `{"a":1}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok, err := store.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if value != `{"a":1}` {
		t.Fatalf("Get value = %q", value)
	}

	if err := store.Set(ctx, "k", `{"a":2}`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	value, _, _ = store.Get(ctx, "k")
	if value != `{"a":2}` {
		t.Fatalf("overwrite value = %q", value)
	}
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatalf("key survived delete")
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete absent key: %v", err)
	}
}

func TestMemoryStoreRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewMemoryStore()

	if err := store.Set(ctx, "k", "v"); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
	if _, _, err := store.Get(ctx, "k"); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}
