// Package cache provides the format result cache.
//
// # Overview
//
// Formatting is deterministic: the same source bytes, language and layout
// knobs always produce the same output. The cache stores that output keyed
// by a content hash so unchanged files skip the layout search entirely.
//
// Two backends implement the Store interface:
//   - MemoryStore: in-process map with an optional entry cap
//   - SQLiteStore: persistent store surviving across runs
//
// # Retention
//
// The Pruner deletes entries by age and by total count. In watch mode the
// Scheduler runs the pruner on a cron schedule.
//
// # Usage
//
//	store, err := cache.NewSQLiteStore(&cache.SQLiteConfig{Path: ".callisto/cache.db"})
//	if err != nil { ... }
//	defer store.Close()
//
//	entry, err := store.Get(ctx, key)
//	if errors.Is(err, cache.ErrNotFound) {
//	    // format, then store.Put(ctx, &cache.Entry{...})
//	}
package cache
