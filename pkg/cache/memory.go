package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore implements the Store interface using an in-memory map. It is
// the default backend: fast, but results do not survive the process.
type MemoryStore struct {
	entries    map[string]*Entry
	maxEntries int
	mu         sync.RWMutex
}

// NewMemoryStore creates an in-memory store. maxEntries caps the number of
// entries, evicting the oldest on overflow; zero means unlimited.
func NewMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{
		entries:    make(map[string]*Entry),
		maxEntries: maxEntries,
	}
}

// Put stores an entry, replacing any existing entry with the same key.
func (s *MemoryStore) Put(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *entry
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.entries[stored.Key] = &stored

	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		s.evictOldestLocked(len(s.entries) - s.maxEntries)
	}
	return nil
}

// Get retrieves the entry for a key.
func (s *MemoryStore) Get(ctx context.Context, key string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	found := *entry
	return &found, nil
}

// Count returns the number of stored entries.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// DeleteOlderThan removes entries created before the cutoff.
func (s *MemoryStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for key, entry := range s.entries {
		if entry.CreatedAt.Before(cutoff) {
			delete(s.entries, key)
			deleted++
		}
	}
	return deleted, nil
}

// DeleteOldest removes the oldest entries until at most keep remain.
func (s *MemoryStore) DeleteOldest(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 || len(s.entries) <= keep {
		return 0, nil
	}
	excess := len(s.entries) - keep
	s.evictOldestLocked(excess)
	return int64(excess), nil
}

// Close releases the store. The memory backend has nothing to release.
func (s *MemoryStore) Close() error {
	return nil
}

// evictOldestLocked removes the n oldest entries. Callers hold the lock.
func (s *MemoryStore) evictOldestLocked(n int) {
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return s.entries[keys[i]].CreatedAt.Before(s.entries[keys[j]].CreatedAt)
	})
	for i := 0; i < n && i < len(keys); i++ {
		delete(s.entries, keys[i])
	}
}
