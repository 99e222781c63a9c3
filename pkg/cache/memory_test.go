package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// TestMemoryStore_PutGet tests basic storage and retrieval.
func TestMemoryStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	entry := &Entry{
		Key:      "abc123",
		Language: "go",
		Output:   "package main\n",
		Cost:     4,
	}
	if err := store.Put(ctx, entry); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Output != entry.Output {
		t.Errorf("Output = %q, want %q", got.Output, entry.Output)
	}
	if got.Language != "go" {
		t.Errorf("Language = %q, want go", got.Language)
	}
	if got.ID == "" {
		t.Error("Put() did not assign an ID")
	}
	if got.CreatedAt.IsZero() {
		t.Error("Put() did not assign CreatedAt")
	}
}

// TestMemoryStore_GetMissing tests the not-found path.
func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore(0)

	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

// TestMemoryStore_PutReplaces tests that a key holds one entry.
func TestMemoryStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	store.Put(ctx, &Entry{Key: "k", Output: "first"})
	store.Put(ctx, &Entry{Key: "k", Output: "second"})

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Output != "second" {
		t.Errorf("Output = %q, want second", got.Output)
	}
	if n, _ := store.Count(ctx); n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

// TestMemoryStore_MaxEntries tests cap-based eviction of the oldest.
func TestMemoryStore_MaxEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(3)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		store.Put(ctx, &Entry{
			Key:       fmt.Sprintf("k%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	if n, _ := store.Count(ctx); n != 3 {
		t.Fatalf("Count() = %d, want 3", n)
	}
	if _, err := store.Get(ctx, "k0"); !errors.Is(err, ErrNotFound) {
		t.Errorf("oldest entry k0 survived eviction")
	}
	if _, err := store.Get(ctx, "k4"); err != nil {
		t.Errorf("newest entry k4 evicted: %v", err)
	}
}

// TestMemoryStore_DeleteOlderThan tests age pruning.
func TestMemoryStore_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	now := time.Now()
	store.Put(ctx, &Entry{Key: "old", CreatedAt: now.Add(-48 * time.Hour)})
	store.Put(ctx, &Entry{Key: "new", CreatedAt: now})

	deleted, err := store.DeleteOlderThan(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteOlderThan() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if _, err := store.Get(ctx, "new"); err != nil {
		t.Errorf("recent entry deleted: %v", err)
	}
}

// TestMemoryStore_DeleteOldest tests count pruning.
func TestMemoryStore_DeleteOldest(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		store.Put(ctx, &Entry{
			Key:       fmt.Sprintf("k%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	deleted, err := store.DeleteOldest(ctx, 2)
	if err != nil {
		t.Fatalf("DeleteOldest() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}
	if _, err := store.Get(ctx, "k3"); err != nil {
		t.Errorf("newest entry deleted: %v", err)
	}

	deleted, err = store.DeleteOldest(ctx, 10)
	if err != nil {
		t.Fatalf("DeleteOldest() error = %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0 when under limit", deleted)
	}
}

// TestMemoryStore_GetIsolated tests that callers cannot mutate stored data.
func TestMemoryStore_GetIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	store.Put(ctx, &Entry{Key: "k", Output: "original"})

	first, _ := store.Get(ctx, "k")
	first.Output = "mutated"

	second, _ := store.Get(ctx, "k")
	if second.Output != "original" {
		t.Errorf("Output = %q, want original", second.Output)
	}
}
