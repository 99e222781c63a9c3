package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no entry exists for a key.
var ErrNotFound = errors.New("cache: entry not found")

// Entry is one cached format result.
type Entry struct {
	// ID uniquely identifies the entry.
	ID string

	// Key is the content hash the result is stored under. It covers the
	// source bytes, the language and the layout knobs.
	Key string

	// Language is the frontend that produced the result.
	Language string

	// Output is the formatted text.
	Output string

	// Cost is the layout cost of the stored output.
	Cost int

	// CreatedAt is when the entry was stored.
	CreatedAt time.Time
}

// Store persists format results.
type Store interface {
	// Put stores an entry, replacing any existing entry with the same key.
	// An empty ID is assigned on write.
	Put(ctx context.Context, entry *Entry) error

	// Get retrieves the entry for a key. Returns ErrNotFound if absent.
	Get(ctx context.Context, key string) (*Entry, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// DeleteOlderThan removes entries created before the cutoff and
	// returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteOldest removes the oldest entries until at most keep remain
	// and returns how many were removed.
	DeleteOldest(ctx context.Context, keep int) (int64, error)

	// Close releases the store's resources.
	Close() error
}
