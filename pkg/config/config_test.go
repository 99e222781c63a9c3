package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig tests that the defaulted configuration validates.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate(DefaultConfig()) error = %v", err)
	}
	if cfg.Format.MaxWidth != DefaultMaxWidth {
		t.Errorf("MaxWidth = %d, want %d", cfg.Format.MaxWidth, DefaultMaxWidth)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Level = %q, want %q", cfg.Logging.Level, DefaultLogLevel)
	}
	if cfg.Cache.Backend != DefaultCacheBackend {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, DefaultCacheBackend)
	}
	if cfg.Watch.DebounceInterval != DefaultDebounceInterval {
		t.Errorf("DebounceInterval = %v, want %v", cfg.Watch.DebounceInterval, DefaultDebounceInterval)
	}
}

// TestApplyDefaults_KeepsExplicitValues tests that defaults never clobber
// explicit values.
func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Format.MaxWidth = 120
	cfg.Logging.Level = "debug"
	cfg.Cache.Backend = "sqlite"

	ApplyDefaults(cfg)

	if cfg.Format.MaxWidth != 120 {
		t.Errorf("MaxWidth = %d, want 120", cfg.Format.MaxWidth)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Cache.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", cfg.Cache.Backend)
	}
}

// TestValidate tests the rejection rules.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(cfg *Config) {}, wantErr: false},
		{name: "width too small", mutate: func(cfg *Config) { cfg.Format.MaxWidth = 10 }, wantErr: true},
		{name: "indent out of range", mutate: func(cfg *Config) { cfg.Format.IndentWidth = 32 }, wantErr: true},
		{name: "negative newline penalty", mutate: func(cfg *Config) { cfg.Format.NewlinePenalty = -1 }, wantErr: true},
		{name: "bad log level", mutate: func(cfg *Config) { cfg.Logging.Level = "loud" }, wantErr: true},
		{name: "bad log format", mutate: func(cfg *Config) { cfg.Logging.Format = "xml" }, wantErr: true},
		{name: "bad cache backend", mutate: func(cfg *Config) { cfg.Cache.Backend = "redis" }, wantErr: true},
		{name: "sqlite without path", mutate: func(cfg *Config) {
			cfg.Cache.Backend = "sqlite"
			cfg.Cache.Path = ""
		}, wantErr: true},
		{name: "bad cron schedule", mutate: func(cfg *Config) { cfg.Cache.PruneSchedule = "not cron" }, wantErr: true},
		{name: "good cron schedule", mutate: func(cfg *Config) { cfg.Cache.PruneSchedule = "0 3 * * *" }, wantErr: false},
		{name: "metrics enabled without address", mutate: func(cfg *Config) {
			cfg.Metrics.Enabled = true
			cfg.Metrics.ListenAddress = ""
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestLoad tests YAML loading, the missing-file path and env overrides.
func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(dir, "absent.yaml"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format.MaxWidth != DefaultMaxWidth {
			t.Errorf("MaxWidth = %d, want default %d", cfg.Format.MaxWidth, DefaultMaxWidth)
		}
	})

	t.Run("file values win over defaults", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		data := []byte("format:\n  max_width: 100\nlogging:\n  level: warn\nwatch:\n  debounce_interval: 250ms\n")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format.MaxWidth != 100 {
			t.Errorf("MaxWidth = %d, want 100", cfg.Format.MaxWidth)
		}
		if cfg.Logging.Level != "warn" {
			t.Errorf("Level = %q, want warn", cfg.Logging.Level)
		}
		if cfg.Watch.DebounceInterval != 250*time.Millisecond {
			t.Errorf("DebounceInterval = %v, want 250ms", cfg.Watch.DebounceInterval)
		}
	})

	t.Run("env overrides win over file", func(t *testing.T) {
		path := filepath.Join(dir, "override.yaml")
		if err := os.WriteFile(path, []byte("format:\n  max_width: 100\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("CALLISTO_FORMAT_MAX_WIDTH", "90")
		t.Setenv("CALLISTO_LOGGING_LEVEL", "debug")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format.MaxWidth != 90 {
			t.Errorf("MaxWidth = %d, want env override 90", cfg.Format.MaxWidth)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Level = %q, want debug", cfg.Logging.Level)
		}
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("Load() error = nil, want parse failure")
		}
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("format:\n  max_width: 5\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("Load() error = nil, want validation failure")
		}
	})
}
