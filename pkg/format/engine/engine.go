package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mercator-hq/callisto/pkg/cache"
	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/format/optimizer"
	"mercator-hq/callisto/pkg/format/router"
	"mercator-hq/callisto/pkg/lang"
	"mercator-hq/callisto/pkg/telemetry/logging"
	"mercator-hq/callisto/pkg/telemetry/metrics"
)

// Config controls the format pipeline.
type Config struct {
	// MaxWidth is the target line width.
	MaxWidth int

	// IndentWidth is the column width of one indent level.
	IndentWidth int

	// UseTabs renders indentation with tabs instead of spaces.
	UseTabs bool

	// NewlinePenalty is the base cost of breaking a line.
	NewlinePenalty int

	// OverflowPenalty is the cost per column past MaxWidth.
	OverflowPenalty int

	// MaxStates bounds the layout search per file.
	MaxStates int
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		MaxWidth:        config.DefaultMaxWidth,
		IndentWidth:     config.DefaultIndentWidth,
		NewlinePenalty:  config.DefaultNewlinePenalty,
		OverflowPenalty: config.DefaultOverflowPenalty,
		MaxStates:       config.DefaultMaxStates,
	}
}

// FromFormatConfig builds a pipeline configuration from the file
// configuration section.
func FromFormatConfig(fc config.FormatConfig) Config {
	return Config{
		MaxWidth:        fc.MaxWidth,
		IndentWidth:     fc.IndentWidth,
		UseTabs:         fc.UseTabs,
		NewlinePenalty:  fc.NewlinePenalty,
		OverflowPenalty: fc.OverflowPenalty,
		MaxStates:       fc.MaxStates,
	}
}

// Result is the outcome of formatting one file.
type Result struct {
	// RunID uniquely identifies this format run in logs.
	RunID string

	// Language is the frontend that tokenized the file.
	Language string

	// Output is the formatted text.
	Output string

	// Changed reports whether Output differs from the input.
	Changed bool

	// CacheHit reports whether Output came from the result cache.
	CacheHit bool

	// Cost is the layout cost of the chosen output.
	Cost int

	// Explored, Pruned and BlockedRetained are the search statistics.
	Explored        int
	Pruned          int
	BlockedRetained int

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Engine runs the format pipeline.
type Engine struct {
	cfg       Config
	registry  *lang.Registry
	logger    *logging.Logger
	store     cache.Store
	collector *metrics.Collector
}

// New creates an engine. A nil logger falls back to a default text logger
// at info level.
func New(cfg Config, registry *lang.Registry, logger *logging.Logger) *Engine {
	if logger == nil {
		logger, _ = logging.New(logging.Config{Format: "text"})
	}
	return &Engine{
		cfg:      cfg,
		registry: registry,
		logger:   logger.Component("format.engine"),
	}
}

// SetCache attaches a result cache. Without one every run searches.
func (e *Engine) SetCache(store cache.Store) {
	e.store = store
}

// SetMetrics attaches a metrics collector.
func (e *Engine) SetMetrics(collector *metrics.Collector) {
	e.collector = collector
}

// Format formats one file's source. The path selects the language frontend;
// the content is taken from src, not read from disk.
func (e *Engine) Format(ctx context.Context, path string, src []byte) (*Result, error) {
	start := time.Now()

	res := &Result{RunID: uuid.NewString()}
	ctx = logging.ContextWithRunID(ctx, res.RunID)
	ctx = logging.ContextWithFile(ctx, path)

	tok, err := e.registry.ForFile(path)
	if err != nil {
		return nil, err
	}
	res.Language = tok.Language()

	key := e.cacheKey(res.Language, src)
	if e.store != nil {
		entry, err := e.store.Get(ctx, key)
		switch {
		case err == nil:
			res.Output = entry.Output
			res.Cost = entry.Cost
			res.CacheHit = true
			res.Changed = res.Output != string(src)
			res.Duration = time.Since(start)
			e.recordCache(res.Language, true)
			e.recordFormat(res.Language, "success", res.Duration)
			e.logger.DebugContext(ctx, "cache hit", "language", res.Language)
			return res, nil
		case errors.Is(err, cache.ErrNotFound):
			e.recordCache(res.Language, false)
		default:
			// A broken cache must not fail the format.
			e.logger.WarnContext(ctx, "cache lookup failed", "error", err)
		}
	}

	tokens, err := tok.Tokenize(ctx, src)
	if err != nil {
		e.recordFormat(res.Language, "error", time.Since(start))
		return nil, fmt.Errorf("failed to tokenize %s: %w", path, err)
	}
	if len(tokens) == 0 {
		res.Output = ""
		res.Changed = res.Output != string(src)
		res.Duration = time.Since(start)
		e.recordFormat(res.Language, "success", res.Duration)
		return res, nil
	}

	rt := router.New(router.Config{NewlinePenalty: e.cfg.NewlinePenalty}, tokens)
	opt := optimizer.New(optimizer.Config{
		MaxWidth:        e.cfg.MaxWidth,
		IndentWidth:     e.cfg.IndentWidth,
		OverflowPenalty: e.cfg.OverflowPenalty,
		MaxStates:       e.cfg.MaxStates,
	}, e.logger.Slog())

	search, err := opt.Search(ctx, tokens, rt)
	if err != nil {
		status := "error"
		if errors.Is(err, optimizer.ErrSearchBudget) {
			status = "budget_exceeded"
		}
		e.recordFormat(res.Language, status, time.Since(start))
		return nil, fmt.Errorf("layout search failed for %s: %w", path, err)
	}

	res.Output = render(tokens, search.Splits, e.cfg.IndentWidth, e.cfg.UseTabs)
	res.Changed = res.Output != string(src)
	res.Cost = search.Cost
	res.Explored = search.Explored
	res.Pruned = search.Pruned
	res.BlockedRetained = search.BlockedRetained
	res.Duration = time.Since(start)

	if e.store != nil {
		if err := e.store.Put(ctx, &cache.Entry{
			Key:      key,
			Language: res.Language,
			Output:   res.Output,
			Cost:     res.Cost,
		}); err != nil {
			e.logger.WarnContext(ctx, "cache store failed", "error", err)
		}
	}

	e.recordFormat(res.Language, "success", res.Duration)
	if e.collector != nil {
		e.collector.RecordSearch(res.Language, res.Explored, res.Pruned, res.BlockedRetained)
	}

	e.logger.DebugContext(ctx, "file formatted",
		"language", res.Language,
		"changed", res.Changed,
		"cost", res.Cost,
		"explored", res.Explored,
		"duration_ms", res.Duration.Milliseconds(),
	)

	return res, nil
}

// cacheKey hashes everything the output depends on: the language, the
// layout knobs and the source bytes.
func (e *Engine) cacheKey(language string, src []byte) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d|%t|%d|%d|",
		language, e.cfg.MaxWidth, e.cfg.IndentWidth, e.cfg.UseTabs,
		e.cfg.NewlinePenalty, e.cfg.OverflowPenalty)
	h.Write(src)
	return hex.EncodeToString(h.Sum(nil))
}

func (e *Engine) recordFormat(language, status string, duration time.Duration) {
	if e.collector != nil {
		e.collector.RecordFormat(language, status, duration)
	}
}

func (e *Engine) recordCache(language string, hit bool) {
	if e.collector == nil {
		return
	}
	if hit {
		e.collector.RecordCacheHit(language)
	} else {
		e.collector.RecordCacheMiss(language)
	}
}
