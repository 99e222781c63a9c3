package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mercator-hq/callisto/pkg/config"
)

// Pruner enforces retention limits on the result cache.
type Pruner struct {
	store  Store
	config *config.CacheConfig
	logger *slog.Logger
}

// NewPruner creates a retention pruner over a store.
func NewPruner(store Store, cfg *config.CacheConfig) *Pruner {
	return &Pruner{
		store:  store,
		config: cfg,
		logger: slog.Default().With("component", "cache.pruner"),
	}
}

// Prune deletes cache entries older than the retention period or exceeding
// the entry cap.
//
// Pruning happens in two phases:
//  1. Age-based: delete entries older than retention_days
//  2. Count-based: if entries > max_entries, delete oldest
//
// Returns the total number of entries deleted.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	var totalDeleted int64

	if p.config.RetentionDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -p.config.RetentionDays)
		deleted, err := p.store.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			return totalDeleted, fmt.Errorf("prune by age failed: %w", err)
		}
		totalDeleted += deleted
		if deleted > 0 {
			p.logger.Debug("pruned cache entries by age",
				"deleted", deleted,
				"cutoff", cutoff,
			)
		}
	}

	if p.config.MaxEntries > 0 {
		deleted, err := p.store.DeleteOldest(ctx, p.config.MaxEntries)
		if err != nil {
			return totalDeleted, fmt.Errorf("prune by count failed: %w", err)
		}
		totalDeleted += deleted
		if deleted > 0 {
			p.logger.Debug("pruned cache entries by count",
				"deleted", deleted,
				"max_entries", p.config.MaxEntries,
			)
		}
	}

	return totalDeleted, nil
}
