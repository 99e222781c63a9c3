package metrics

import (
	"mercator-hq/callisto/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// CacheMetrics tracks the format result cache.
//
// Metrics:
//   - callisto_format_cache_hits_total: cache hits by language
//   - callisto_format_cache_misses_total: cache misses by language
//   - callisto_format_cache_entries: current number of cached entries
type CacheMetrics struct {
	hitsTotal   *prometheus.CounterVec
	missesTotal *prometheus.CounterVec
	entries     prometheus.Gauge
}

// NewCacheMetrics creates and registers cache metrics with the provided
// registry.
func NewCacheMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CacheMetrics {
	cm := &CacheMetrics{
		hitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_hits_total",
				Help:      "Total number of result cache hits",
			},
			[]string{"language"},
		),

		missesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_misses_total",
				Help:      "Total number of result cache misses",
			},
			[]string{"language"},
		),

		entries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_entries",
				Help:      "Current number of cached format results",
			},
		),
	}

	registry.MustRegister(
		cm.hitsTotal,
		cm.missesTotal,
		cm.entries,
	)

	return cm
}

// RecordHit records a cache hit for a language.
func (cm *CacheMetrics) RecordHit(language string) {
	cm.hitsTotal.WithLabelValues(language).Inc()
}

// RecordMiss records a cache miss for a language.
func (cm *CacheMetrics) RecordMiss(language string) {
	cm.missesTotal.WithLabelValues(language).Inc()
}

// SetSize sets the current entry count.
func (cm *CacheMetrics) SetSize(n int) {
	cm.entries.Set(float64(n))
}
