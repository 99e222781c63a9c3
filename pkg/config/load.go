package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from a YAML file, applies defaults, then
// CALLISTO_* environment overrides, and validates the result. A missing
// file is not an error: the defaults (plus overrides) apply.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides applies CALLISTO_SECTION_FIELD environment variables on
// top of the loaded configuration. Unparseable values are ignored in favor
// of the file value.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("CALLISTO_FORMAT_MAX_WIDTH"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Format.MaxWidth = n
		}
	}
	if val := os.Getenv("CALLISTO_FORMAT_INDENT_WIDTH"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Format.IndentWidth = n
		}
	}
	if val := os.Getenv("CALLISTO_FORMAT_USE_TABS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Format.UseTabs = b
		}
	}
	if val := os.Getenv("CALLISTO_FORMAT_MAX_STATES"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Format.MaxStates = n
		}
	}

	if val := os.Getenv("CALLISTO_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("CALLISTO_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}

	if val := os.Getenv("CALLISTO_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("CALLISTO_METRICS_LISTEN_ADDRESS"); val != "" {
		cfg.Metrics.ListenAddress = val
	}

	if val := os.Getenv("CALLISTO_CACHE_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Cache.Enabled = b
		}
	}
	if val := os.Getenv("CALLISTO_CACHE_BACKEND"); val != "" {
		cfg.Cache.Backend = val
	}
	if val := os.Getenv("CALLISTO_CACHE_PATH"); val != "" {
		cfg.Cache.Path = val
	}

	if val := os.Getenv("CALLISTO_WATCH_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.DebounceInterval = d
		}
	}
}
