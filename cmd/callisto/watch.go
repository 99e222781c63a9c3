package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cache"
	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/telemetry/metrics"
	"mercator-hq/callisto/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Reformat files continuously as they change",
	Long: `Watch a directory tree and rewrite files as they change.

Saves are debounced per file, so an editor writing a file several times in
quick succession formats it once. When metrics are enabled in the
configuration, a Prometheus endpoint is served for the lifetime of the
watch. When a cache prune schedule is configured, stale cache entries are
pruned on that schedule.

Examples:
  # Watch the current directory
  callisto watch

  # Watch a specific tree
  callisto watch ./src`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}

	registry := newRegistry()
	eng, store, err := buildEngine(cfg, registry, logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	ctx := cli.SetupSignalHandler()

	// Metrics endpoint, for the lifetime of the watch.
	if cfg.Metrics.Enabled {
		collector := metrics.NewCollector(&cfg.Metrics, nil)
		eng.SetMetrics(collector)

		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		server := &http.Server{
			Addr:              cfg.Metrics.ListenAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("metrics endpoint listening", "address", cfg.Metrics.ListenAddress)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics endpoint failed", "error", err)
			}
		}()
		go func() {
			<-ctx.Done()
			server.Close()
		}()
	}

	// Scheduled cache pruning.
	if store != nil && cfg.Cache.PruneSchedule != "" {
		scheduler := cache.NewScheduler(cache.NewPruner(store, &cfg.Cache))
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	extensions := cfg.Watch.Extensions
	if len(extensions) == 0 {
		extensions = registry.Extensions()
	}

	watcher, err := watch.NewWatcher(&watch.Config{
		Path:             path,
		DebounceInterval: cfg.Watch.DebounceInterval,
		Extensions:       extensions,
		SkipHidden:       true,
	}, logger.Slog())
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	return watcher.Watch(ctx, func(changed string) {
		src, err := os.ReadFile(changed)
		if err != nil {
			logger.Warn("failed to read changed file", "file", changed, "error", err)
			return
		}

		res, err := eng.Format(ctx, changed, src)
		if err != nil {
			logger.Warn("format failed", "file", changed, "error", err)
			return
		}
		if !res.Changed {
			return
		}
		if err := writeFile(changed, res.Output); err != nil {
			logger.Warn("failed to write formatted file", "file", changed, "error", err)
			return
		}
		logger.Info("reformatted",
			"file", changed,
			"cost", res.Cost,
			"duration_ms", res.Duration.Milliseconds(),
		)
	})
}
