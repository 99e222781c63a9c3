package metrics

import (
	"time"

	"mercator-hq/callisto/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector registers and records all Prometheus metrics for Callisto. It
// owns the registry so the watch-mode HTTP endpoint serves exactly the
// metrics the pipeline produces.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// Format run metrics
	searchMetrics *SearchMetrics

	// Result cache metrics
	cacheMetrics *CacheMetrics
}

// NewCollector creates a new metrics collector with the specified
// configuration and Prometheus registry. If registry is nil, a fresh
// registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "callisto",
//		Subsystem: "format",
//	}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = "callisto"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "format"
	}

	return &Collector{
		config:        cfg,
		registry:      registry,
		searchMetrics: NewSearchMetrics(cfg, registry),
		cacheMetrics:  NewCacheMetrics(cfg, registry),
	}
}

// RecordFormat records a completed format run.
//
// Parameters:
//   - language: frontend language name (e.g. "go", "python")
//   - status: run outcome ("success", "error", "budget_exceeded")
//   - duration: wall time of the run
func (c *Collector) RecordFormat(language, status string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.searchMetrics.RecordFormat(language, status, duration)
}

// RecordSearch records the layout search statistics for one run.
//
// Parameters:
//   - language: frontend language name
//   - explored: number of states dequeued
//   - pruned: number of states dropped by domination pruning
//   - retained: number of dominated states kept because a rule blocked
//     pruning
func (c *Collector) RecordSearch(language string, explored, pruned, retained int) {
	if !c.config.Enabled {
		return
	}
	c.searchMetrics.RecordSearch(language, explored, pruned, retained)
}

// RecordCacheHit records a result cache hit.
func (c *Collector) RecordCacheHit(language string) {
	if !c.config.Enabled {
		return
	}
	c.cacheMetrics.RecordHit(language)
}

// RecordCacheMiss records a result cache miss.
func (c *Collector) RecordCacheMiss(language string) {
	if !c.config.Enabled {
		return
	}
	c.cacheMetrics.RecordMiss(language)
}

// SetCacheSize sets the current number of cached entries.
func (c *Collector) SetCacheSize(n int) {
	if !c.config.Enabled {
		return
	}
	c.cacheMetrics.SetSize(n)
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
