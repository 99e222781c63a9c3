package config

import "time"

// Config is the root configuration for Callisto.
type Config struct {
	// Format controls the layout cost model and search budget.
	Format FormatConfig `yaml:"format"`

	// Logging controls structured log output.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics controls the Prometheus endpoint exposed in watch mode.
	Metrics MetricsConfig `yaml:"metrics"`

	// Cache controls the format result cache.
	Cache CacheConfig `yaml:"cache"`

	// Watch controls watch-mode file monitoring.
	Watch WatchConfig `yaml:"watch"`
}

// FormatConfig controls the layout search.
type FormatConfig struct {
	// MaxWidth is the target line width.
	MaxWidth int `yaml:"max_width"`

	// IndentWidth is the column width of one indent level.
	IndentWidth int `yaml:"indent_width"`

	// UseTabs renders indentation with tabs instead of spaces.
	UseTabs bool `yaml:"use_tabs"`

	// NewlinePenalty is the base cost of breaking a line.
	NewlinePenalty int `yaml:"newline_penalty"`

	// OverflowPenalty is the cost per column past MaxWidth.
	OverflowPenalty int `yaml:"overflow_penalty"`

	// MaxStates bounds the number of search states per file.
	MaxStates int `yaml:"max_states"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is the output format: json or text.
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	// Enabled turns the endpoint on. It is only served in watch mode.
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the address the metrics handler binds to.
	ListenAddress string `yaml:"listen_address"`

	// Namespace is the metric name namespace.
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric name subsystem.
	Subsystem string `yaml:"subsystem"`
}

// CacheConfig controls the format result cache.
type CacheConfig struct {
	// Enabled turns the cache on.
	Enabled bool `yaml:"enabled"`

	// Backend selects the store: "memory" or "sqlite".
	Backend string `yaml:"backend"`

	// Path is the sqlite database file path.
	Path string `yaml:"path"`

	// MaxEntries caps the number of cached results; zero means unlimited.
	MaxEntries int `yaml:"max_entries"`

	// RetentionDays prunes entries older than this; zero disables age
	// pruning.
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is a cron expression for scheduled pruning in watch
	// mode; empty disables the scheduler.
	PruneSchedule string `yaml:"prune_schedule"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	// DebounceInterval is the quiet period before a change triggers a
	// reformat.
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// Extensions limits watching to these file extensions; empty means all
	// extensions with a registered frontend.
	Extensions []string `yaml:"extensions"`
}
