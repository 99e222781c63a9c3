package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Validate checks a configuration for values no component can run with. It
// returns the first problem found.
func Validate(cfg *Config) error {
	if cfg.Format.MaxWidth < 20 {
		return fmt.Errorf("format.max_width %d too small, minimum 20", cfg.Format.MaxWidth)
	}
	if cfg.Format.IndentWidth < 1 || cfg.Format.IndentWidth > 16 {
		return fmt.Errorf("format.indent_width %d out of range 1..16", cfg.Format.IndentWidth)
	}
	if cfg.Format.NewlinePenalty < 0 {
		return fmt.Errorf("format.newline_penalty must not be negative")
	}
	if cfg.Format.OverflowPenalty < 1 {
		return fmt.Errorf("format.overflow_penalty must be at least 1")
	}
	if cfg.Format.MaxStates < 100 {
		return fmt.Errorf("format.max_states %d too small, minimum 100", cfg.Format.MaxStates)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q invalid, want debug, info, warn or error", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format %q invalid, want json or text", cfg.Logging.Format)
	}

	switch cfg.Cache.Backend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("cache.backend %q invalid, want memory or sqlite", cfg.Cache.Backend)
	}
	if cfg.Cache.Backend == "sqlite" && cfg.Cache.Path == "" {
		return fmt.Errorf("cache.path required for the sqlite backend")
	}
	if cfg.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache.max_entries must not be negative")
	}
	if cfg.Cache.RetentionDays < 0 {
		return fmt.Errorf("cache.retention_days must not be negative")
	}
	if cfg.Cache.PruneSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Cache.PruneSchedule); err != nil {
			return fmt.Errorf("cache.prune_schedule %q invalid: %w", cfg.Cache.PruneSchedule, err)
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.ListenAddress == "" {
		return fmt.Errorf("metrics.listen_address required when metrics are enabled")
	}

	if cfg.Watch.DebounceInterval < 0 {
		return fmt.Errorf("watch.debounce_interval must not be negative")
	}

	return nil
}
