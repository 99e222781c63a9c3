// Package logging provides structured logging for Callisto.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON and text formats
//   - Context-aware logging with run IDs and file paths
//   - Per-component child loggers
//   - Configurable log levels (debug, info, warn, error)
//
// # Usage
//
//	// Create a logger
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	// Log structured data
//	logger.Info("file formatted",
//	    "file", "main.go",
//	    "duration_ms", 12,
//	)
//
//	// Create context-aware logger
//	ctx := logging.ContextWithRunID(ctx, runID)
//	ctxLogger := logger.WithContext(ctx)
//	ctxLogger.Info("search started")  // Includes run_id automatically
//
// # Components
//
// Subsystems attach a component field so log lines can be filtered per
// subsystem:
//
//	engLog := logger.Component("format.engine")
//	engLog.Debug("cache miss", "file", path)
package logging
