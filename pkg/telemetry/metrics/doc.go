// Package metrics provides Prometheus metrics collection for Callisto.
//
// # Overview
//
// The metrics package instruments the format pipeline:
//   - Format run counts and durations per language and outcome
//   - Layout search state counts (explored, pruned, retained)
//   - Result cache hit/miss counters
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//
//	// Record a completed format run
//	collector.RecordFormat("go", "success", 12*time.Millisecond)
//	collector.RecordSearch("go", 5400, 3100, 12)
//
//	// Expose the endpoint in watch mode
//	http.Handle("/metrics", collector.Handler())
//
// All metrics share the configured namespace and subsystem, which default
// to "callisto" and "format".
package metrics
