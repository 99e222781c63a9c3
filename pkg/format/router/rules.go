package router

import (
	"fmt"
	"strings"

	"mercator-hq/callisto/pkg/format/policy"
	"mercator-hq/callisto/pkg/format/token"
)

// Label prefixes identify rule provenance for structural filtering.
const (
	// SingleLinePrefix marks rules that forbid breaking until their closer.
	SingleLinePrefix = "singleLine"

	// BrokenBracketPrefix marks rules that force breaks inside a pair.
	BrokenBracketPrefix = "brokenBracket"

	// SeparatorBreakPrefix marks the separator obligation inside a broken
	// pair.
	SeparatorBreakPrefix = "sepBreak"
)

// IsSingleLine reports whether a leaf rule originates from a single-line
// bracket choice. The engine uses it to drop such rules when a forced break
// (a comment, typically) makes them unsatisfiable.
func IsSingleLine(l policy.Leaf) bool {
	return strings.HasPrefix(l.Label(), SingleLinePrefix)
}

// SingleLine returns the rule attached when no break is chosen after an
// opening bracket: until the matching closer, newline candidates are
// stripped from every decision. The rule is flagged no-dequeue so the
// optimizer keeps the holding state pending while the obligation is live.
func SingleLine(open, close token.Token) policy.Policy {
	label := fmt.Sprintf("%s@%d", SingleLinePrefix, open.Start)
	return policy.NewBlockingClause(label, policy.On(close.End),
		func(d *token.Decision) ([]token.Split, bool) {
			flat := d.NoNewlines()
			if len(flat) == len(d.Splits) {
				return nil, false
			}
			return flat, true
		})
}

// BrokenBracket returns the rule set attached when a break is chosen after
// the opening bracket at index open: a break before the matching closer,
// and a break after every separator directly inside the pair. The separator
// obligation is wrapped in a proxy that delegates to the inner rule as it
// narrows, activating once the scan passes the first separator.
func BrokenBracket(tokens []token.Token, open, closer int) policy.Policy {
	openTok, closeTok := tokens[open], tokens[closer]

	closerBreak := policy.NewClause(
		fmt.Sprintf("%s@%d", BrokenBracketPrefix, openTok.Start),
		policy.On(closeTok.End),
		func(d *token.Decision) ([]token.Split, bool) {
			if d.FormatToken.Right.Start != closeTok.Start {
				return nil, false
			}
			return d.OnlyNewlines(), true
		})

	seps := directSeparators(tokens, open, closer)
	if len(seps) == 0 {
		return closerBreak
	}

	sepBreak := policy.NewClause(
		fmt.Sprintf("%s@%d", SeparatorBreakPrefix, openTok.Start),
		policy.On(closeTok.End),
		func(d *token.Decision) ([]token.Split, bool) {
			if d.FormatToken.Left.Class != token.ClassSeparator {
				return nil, false
			}
			if !seps[d.FormatToken.Left.Start] {
				return nil, false
			}
			return d.OnlyNewlines(), true
		})

	firstSepEnd := firstSeparatorEnd(tokens, seps)
	delayed := policy.NewProxy(
		fmt.Sprintf("%s@%d", BrokenBracketPrefix, openTok.Start),
		sepBreak,
		policy.On(closeTok.End),
		func(inner policy.Policy) policy.ApplyFunc {
			return func(d *token.Decision) ([]token.Split, bool) {
				if d.FormatToken.Left.End < firstSepEnd {
					return nil, false
				}
				return inner.TryApply(d)
			}
		})

	return policy.And(closerBreak, delayed)
}

// directSeparators collects the start offsets of separator tokens at the
// top nesting level of the pair (open, closer), excluding separators inside
// nested brackets.
func directSeparators(tokens []token.Token, open, closer int) map[int]bool {
	seps := make(map[int]bool)
	depth := 0
	for i := open + 1; i < closer && i < len(tokens); i++ {
		switch tokens[i].Class {
		case token.ClassOpenBracket:
			depth++
		case token.ClassCloseBracket:
			depth--
		case token.ClassSeparator:
			if depth == 0 {
				seps[tokens[i].Start] = true
			}
		}
	}
	return seps
}

func firstSeparatorEnd(tokens []token.Token, seps map[int]bool) int {
	for _, t := range tokens {
		if t.Class == token.ClassSeparator && seps[t.Start] {
			return t.End
		}
	}
	return 0
}
