package treesitter

import (
	"context"
	"testing"

	"mercator-hq/callisto/pkg/format/token"
)

// TestTokenize_Go tests that the Go frontend emits leaf tokens in source
// order with faithful offsets and sensible classes.
func TestTokenize_Go(t *testing.T) {
	src := []byte("package x\n\nfunc f(a, b int) {}\n")

	tok := NewGo()
	defer tok.Close()

	tokens, err := tok.Tokenize(context.Background(), src)
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(tokens) == 0 {
		t.Fatalf("Tokenize() produced no tokens")
	}

	prevEnd := 0
	classes := make(map[string]token.Class)
	for _, tk := range tokens {
		if tk.Start < prevEnd {
			t.Errorf("token %v overlaps previous token ending at %d", tk, prevEnd)
		}
		if got := string(src[tk.Start:tk.End]); got != tk.Text {
			t.Errorf("token text %q does not match source slice %q", tk.Text, got)
		}
		prevEnd = tk.End
		classes[tk.Text] = tk.Class
	}

	wantClasses := map[string]token.Class{
		"(": token.ClassOpenBracket,
		")": token.ClassCloseBracket,
		",": token.ClassSeparator,
		"{": token.ClassOpenBracket,
		"}": token.ClassCloseBracket,
	}
	for text, want := range wantClasses {
		got, ok := classes[text]
		if !ok {
			t.Errorf("token %q missing from output", text)
			continue
		}
		if got != want {
			t.Errorf("class of %q = %v, want %v", text, got, want)
		}
	}
}

// TestTokenize_Comment tests that comments are classified for forced-break
// handling.
func TestTokenize_Comment(t *testing.T) {
	src := []byte("// note\npackage x\n")

	tok := NewGo()
	defer tok.Close()

	tokens, err := tok.Tokenize(context.Background(), src)
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	found := false
	for _, tk := range tokens {
		if tk.Class == token.ClassComment {
			found = true
		}
	}
	if !found {
		t.Errorf("no comment-classified token in %v", tokens)
	}
}
