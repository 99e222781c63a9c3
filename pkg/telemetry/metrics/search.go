package metrics

import (
	"time"

	"mercator-hq/callisto/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// SearchMetrics tracks the format pipeline and its layout search.
//
// Metrics:
//   - callisto_format_runs_total: format runs by language and status
//   - callisto_format_duration_seconds: format run duration
//   - callisto_format_search_states_total: search states by language and kind
type SearchMetrics struct {
	// Total format runs
	runsTotal *prometheus.CounterVec

	// Format run duration histogram
	runDuration *prometheus.HistogramVec

	// Search state counts, labelled by what happened to the state
	statesTotal *prometheus.CounterVec
}

// NewSearchMetrics creates and registers search metrics with the provided
// registry.
func NewSearchMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *SearchMetrics {
	sm := &SearchMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "runs_total",
				Help:      "Total number of format runs",
			},
			[]string{"language", "status"},
		),

		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "duration_seconds",
				Help:      "Duration of a format run in seconds",
				// Single-file runs land between 1ms and a few seconds
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"language"},
		),

		statesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "search_states_total",
				Help:      "Layout search states by what happened to them",
			},
			[]string{"language", "kind"},
		),
	}

	registry.MustRegister(
		sm.runsTotal,
		sm.runDuration,
		sm.statesTotal,
	)

	return sm
}

// RecordFormat records one completed format run.
func (sm *SearchMetrics) RecordFormat(language, status string, duration time.Duration) {
	sm.runsTotal.WithLabelValues(language, status).Inc()
	sm.runDuration.WithLabelValues(language).Observe(duration.Seconds())
}

// RecordSearch records the state statistics of one layout search.
func (sm *SearchMetrics) RecordSearch(language string, explored, pruned, retained int) {
	sm.statesTotal.WithLabelValues(language, "explored").Add(float64(explored))
	sm.statesTotal.WithLabelValues(language, "pruned").Add(float64(pruned))
	sm.statesTotal.WithLabelValues(language, "retained").Add(float64(retained))
}
