package token

import (
	"reflect"
	"testing"
)

func tok(text string, start int, class Class) Token {
	return Token{Text: text, Start: start, End: start + len(text), Class: class}
}

// TestBoundaries tests boundary construction over token slices.
func TestBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   int
	}{
		{name: "empty", tokens: nil, want: 0},
		{name: "single token", tokens: []Token{tok("a", 0, ClassOther)}, want: 0},
		{name: "two tokens", tokens: []Token{tok("a", 0, ClassOther), tok("b", 2, ClassOther)}, want: 1},
		{name: "five tokens", tokens: []Token{
			tok("a", 0, ClassOther), tok("(", 1, ClassOpenBracket), tok("b", 2, ClassOther),
			tok(")", 3, ClassCloseBracket), tok(";", 4, ClassTerminator),
		}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Boundaries(tt.tokens)
			if len(got) != tt.want {
				t.Fatalf("Boundaries() produced %d boundaries, want %d", len(got), tt.want)
			}
			for i, ft := range got {
				if ft.Index != i {
					t.Errorf("boundary %d has Index %d", i, ft.Index)
				}
				if ft.Left != tt.tokens[i] || ft.Right != tt.tokens[i+1] {
					t.Errorf("boundary %d pairs %v and %v, want adjacent tokens", i, ft.Left, ft.Right)
				}
			}
		})
	}
}

// TestMatchBrackets tests pairing of open and close delimiters.
func TestMatchBrackets(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   map[int]int
	}{
		{
			name: "flat pair",
			tokens: []Token{
				tok("f", 0, ClassOther), tok("(", 1, ClassOpenBracket), tok("x", 2, ClassOther), tok(")", 3, ClassCloseBracket),
			},
			want: map[int]int{1: 3},
		},
		{
			name: "nested pairs",
			tokens: []Token{
				tok("{", 0, ClassOpenBracket), tok("[", 1, ClassOpenBracket),
				tok("]", 2, ClassCloseBracket), tok("}", 3, ClassCloseBracket),
			},
			want: map[int]int{0: 3, 1: 2},
		},
		{
			name: "unbalanced open left unpaired",
			tokens: []Token{
				tok("(", 0, ClassOpenBracket), tok("x", 1, ClassOther),
			},
			want: map[int]int{},
		},
		{
			name: "mismatched kinds left unpaired",
			tokens: []Token{
				tok("(", 0, ClassOpenBracket), tok("]", 1, ClassCloseBracket),
			},
			want: map[int]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchBrackets(tt.tokens)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MatchBrackets() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestDecision_WithSplits tests that narrowing returns a copy and leaves the
// original untouched.
func TestDecision_WithSplits(t *testing.T) {
	ft := &FormatToken{Left: tok("a", 0, ClassOther), Right: tok("b", 2, ClassOther)}
	orig := NewDecision(ft, []Split{
		{Kind: NoSplit}, {Kind: SpaceSplit}, {Kind: NewlineSplit, Penalty: 2},
	})

	narrowed := orig.WithSplits(orig.OnlyNewlines())

	if len(orig.Splits) != 3 {
		t.Errorf("original decision mutated: %v", orig.Splits)
	}
	if len(narrowed.Splits) != 1 || narrowed.Splits[0].Kind != NewlineSplit {
		t.Errorf("WithSplits(OnlyNewlines()) = %v, want single newline split", narrowed.Splits)
	}
	if narrowed.FormatToken != ft {
		t.Errorf("narrowed decision lost its boundary")
	}

	flat := orig.NoNewlines()
	if len(flat) != 2 {
		t.Errorf("NoNewlines() = %v, want the two non-breaking splits", flat)
	}
}
