package lang

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"mercator-hq/callisto/pkg/format/token"
)

// ErrUnsupported is returned when no frontend is registered for a file.
var ErrUnsupported = fmt.Errorf("no tokenizer registered for file type")

// Tokenizer reduces source bytes to the token slice the engine operates on.
// Implementations must emit tokens in source order with non-decreasing byte
// offsets; the policy core's expiration model depends on it.
type Tokenizer interface {
	// Language returns the frontend's language name, used in logs and cache
	// keys.
	Language() string

	// Tokenize produces the ordered token slice for src.
	Tokenize(ctx context.Context, src []byte) ([]token.Token, error)
}

// Registry maps file extensions to tokenizer frontends. It is safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	byExt    map[string]Tokenizer
	fallback Tokenizer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Tokenizer)}
}

// Register associates a tokenizer with one or more file extensions
// (including the leading dot, e.g. ".go").
func (r *Registry) Register(t Tokenizer, exts ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range exts {
		r.byExt[strings.ToLower(ext)] = t
	}
}

// SetFallback sets the tokenizer used when no extension matches. A nil
// fallback (the default) makes unmatched files an error.
func (r *Registry) SetFallback(t Tokenizer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = t
}

// ForFile returns the tokenizer for a file path, or ErrUnsupported.
func (r *Registry) ForFile(path string) (Tokenizer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := r.byExt[ext]; ok {
		return t, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupported, path)
}

// Extensions returns the registered extensions, sorted, for CLI help and
// watch-mode filtering.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
