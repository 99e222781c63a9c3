package config

import "time"

// Default values applied by ApplyDefaults.
const (
	DefaultMaxWidth        = 80
	DefaultIndentWidth     = 4
	DefaultNewlinePenalty  = 1
	DefaultOverflowPenalty = 10
	DefaultMaxStates       = 100000

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultMetricsListenAddress = "127.0.0.1:9464"
	DefaultMetricsNamespace     = "callisto"
	DefaultMetricsSubsystem     = "format"

	DefaultCacheBackend = "memory"
	DefaultCachePath    = ".callisto/cache.db"
	DefaultCacheEntries = 4096

	DefaultDebounceInterval = 150 * time.Millisecond
)

// DefaultConfig returns a fully defaulted configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with defaults. Explicit values are
// never overwritten.
func ApplyDefaults(cfg *Config) {
	if cfg.Format.MaxWidth == 0 {
		cfg.Format.MaxWidth = DefaultMaxWidth
	}
	if cfg.Format.IndentWidth == 0 {
		cfg.Format.IndentWidth = DefaultIndentWidth
	}
	if cfg.Format.NewlinePenalty == 0 {
		cfg.Format.NewlinePenalty = DefaultNewlinePenalty
	}
	if cfg.Format.OverflowPenalty == 0 {
		cfg.Format.OverflowPenalty = DefaultOverflowPenalty
	}
	if cfg.Format.MaxStates == 0 {
		cfg.Format.MaxStates = DefaultMaxStates
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	if cfg.Metrics.ListenAddress == "" {
		cfg.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}

	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = DefaultCacheBackend
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = DefaultCachePath
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = DefaultCacheEntries
	}

	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultDebounceInterval
	}
}
