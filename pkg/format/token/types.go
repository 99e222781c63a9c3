package token

import "fmt"

// Class is a coarse lexical classification used by the router to decide which
// candidate splits a boundary gets. Frontends assign classes; the engine core
// never inspects token text directly.
type Class int

const (
	// ClassOther is any token without special layout significance.
	ClassOther Class = iota

	// ClassOpenBracket is an opening delimiter: ( [ {
	ClassOpenBracket

	// ClassCloseBracket is a closing delimiter: ) ] }
	ClassCloseBracket

	// ClassSeparator is an element separator, typically a comma.
	ClassSeparator

	// ClassTerminator is a statement terminator, typically a semicolon.
	ClassTerminator

	// ClassComment is a comment token. Line comments force a break after them.
	ClassComment
)

// String returns a short name for the class, used in diagnostics.
func (c Class) String() string {
	switch c {
	case ClassOpenBracket:
		return "open"
	case ClassCloseBracket:
		return "close"
	case ClassSeparator:
		return "sep"
	case ClassTerminator:
		return "term"
	case ClassComment:
		return "comment"
	default:
		return "other"
	}
}

// Token is a single lexical token with its position in the original source.
// Tokens are immutable after construction.
type Token struct {
	// Text is the exact source text of the token.
	Text string

	// Start is the byte offset of the first byte of the token.
	Start int

	// End is the byte offset one past the last byte of the token.
	End int

	// Class is the layout classification assigned by the frontend.
	Class Class
}

// String renders the token for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("%q[%d:%d,%s]", t.Text, t.Start, t.End, t.Class)
}

// FormatToken is the boundary between two lexically adjacent tokens. It is
// the unit of position for the whole engine: policies expire against it and
// decisions are made at it. Created once per boundary, never mutated.
type FormatToken struct {
	// Left is the token on the left side of the boundary.
	Left Token

	// Right is the token on the right side of the boundary.
	Right Token

	// Index is the position of this boundary in the boundary sequence,
	// counting from zero.
	Index int
}

// String renders the boundary for diagnostics.
func (ft *FormatToken) String() string {
	return fmt.Sprintf("%q<%d>%q", ft.Left.Text, ft.Index, ft.Right.Text)
}

// Boundaries builds the boundary sequence for a token slice. A slice with
// fewer than two tokens has no boundaries.
func Boundaries(tokens []Token) []*FormatToken {
	if len(tokens) < 2 {
		return nil
	}
	fts := make([]*FormatToken, 0, len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		fts = append(fts, &FormatToken{Left: tokens[i], Right: tokens[i+1], Index: i})
	}
	return fts
}

// MatchBrackets pairs each opening bracket token with its closing partner.
// The returned map is keyed by the opener's index into tokens and holds the
// closer's index. Unbalanced brackets are left unpaired rather than reported:
// the formatter must still lay out broken source.
func MatchBrackets(tokens []Token) map[int]int {
	pairs := make(map[int]int)
	var stack []int
	for i, t := range tokens {
		switch t.Class {
		case ClassOpenBracket:
			stack = append(stack, i)
		case ClassCloseBracket:
			if len(stack) > 0 {
				open := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if matches(tokens[open].Text, t.Text) {
					pairs[open] = i
				}
			}
		}
	}
	return pairs
}

func matches(open, close string) bool {
	switch open {
	case "(":
		return close == ")"
	case "[":
		return close == "]"
	case "{":
		return close == "}"
	}
	return false
}
