package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cache"
	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/format/engine"
	"mercator-hq/callisto/pkg/lang"
	"mercator-hq/callisto/pkg/lang/treesitter"
	"mercator-hq/callisto/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "callisto",
	Short: "Callisto - search-based source code formatter",
	Long: `Callisto is a source-code formatter driven by state-space search.

It tokenizes a file, enumerates the line-break decisions at each token
boundary, and searches for the cheapest layout that satisfies the
formatting rules those decisions activate:
  - Consistent bracket breaking: break at one element, break at all
  - Single-line regions that reject any internal newline
  - A cost model balancing line width against break count

For more information, visit: https://github.com/mercator-hq/callisto`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".callisto.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadRuntime loads configuration and builds the logger every subcommand
// shares. The --verbose flag forces debug logging.
func loadRuntime() (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, cli.NewConfigError("", err.Error())
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, nil, cli.NewConfigError("logging", err.Error())
	}

	return cfg, logger, nil
}

// newRegistry builds the language registry with every built-in frontend.
func newRegistry() *lang.Registry {
	registry := lang.NewRegistry()
	treesitter.RegisterAll(registry)
	return registry
}

// buildEngine assembles the format engine with the configured cache
// backend attached. The returned store is nil when caching is disabled.
func buildEngine(cfg *config.Config, registry *lang.Registry, logger *logging.Logger) (*engine.Engine, cache.Store, error) {
	eng := engine.New(engine.FromFormatConfig(cfg.Format), registry, logger)

	if !cfg.Cache.Enabled {
		return eng, nil, nil
	}

	var store cache.Store
	switch cfg.Cache.Backend {
	case "sqlite":
		sqliteStore, err := cache.NewSQLiteStore(&cache.SQLiteConfig{Path: cfg.Cache.Path})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open cache: %w", err)
		}
		store = sqliteStore
	default:
		store = cache.NewMemoryStore(cfg.Cache.MaxEntries)
	}

	eng.SetCache(store)
	return eng, store, nil
}
