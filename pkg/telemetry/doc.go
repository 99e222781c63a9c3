// Package telemetry provides observability for Callisto.
//
// # Components
//
//   - logging: structured logging on log/slog
//   - metrics: Prometheus metrics for format runs, the layout search and
//     the result cache
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	if err != nil { ... }
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	collector.RecordFormat("go", "success", duration)
//
// Metrics are only served in watch mode, where the process lives long
// enough for a scrape to mean something.
package telemetry
