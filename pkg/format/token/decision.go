package token

import (
	"fmt"
	"strings"
)

// SplitKind is the layout action a Split takes at a boundary.
type SplitKind int

const (
	// NoSplit joins the two tokens with nothing between them.
	NoSplit SplitKind = iota

	// SpaceSplit joins the two tokens with a single space.
	SpaceSplit

	// NewlineSplit breaks the line at the boundary.
	NewlineSplit
)

// String returns a short name for the split kind.
func (k SplitKind) String() string {
	switch k {
	case SpaceSplit:
		return "space"
	case NewlineSplit:
		return "newline"
	default:
		return "nosplit"
	}
}

// Split is one candidate layout action at a boundary. The policy core treats
// Splits as opaque values; only the router and the renderer interpret them.
type Split struct {
	// Kind is the layout action.
	Kind SplitKind

	// IndentDelta adjusts the indentation level for lines after the break.
	// Only meaningful for NewlineSplit.
	IndentDelta int

	// Penalty is the cost charged by the optimizer for choosing this split.
	Penalty int
}

// String renders the split for diagnostics.
func (s Split) String() string {
	if s.Kind == NewlineSplit && s.IndentDelta != 0 {
		return fmt.Sprintf("%s%+d(p%d)", s.Kind, s.IndentDelta, s.Penalty)
	}
	return fmt.Sprintf("%s(p%d)", s.Kind, s.Penalty)
}

// Decision is the negotiation unit at one boundary: the boundary itself plus
// the ordered candidate splits currently permitted there. A Decision is never
// mutated; policies produce replacements through WithSplits.
type Decision struct {
	// FormatToken is the boundary this decision applies to.
	FormatToken *FormatToken

	// Splits is the ordered list of candidate layout actions.
	Splits []Split
}

// NewDecision creates a decision for a boundary with its default candidates.
func NewDecision(ft *FormatToken, splits []Split) *Decision {
	return &Decision{FormatToken: ft, Splits: splits}
}

// WithSplits returns a copy of the decision carrying the given candidates in
// place of the current ones. The receiver is not modified.
func (d *Decision) WithSplits(splits []Split) *Decision {
	return &Decision{FormatToken: d.FormatToken, Splits: splits}
}

// OnlyNewlines returns the subset of candidates that break the line.
func (d *Decision) OnlyNewlines() []Split {
	return filterSplits(d.Splits, func(s Split) bool { return s.Kind == NewlineSplit })
}

// NoNewlines returns the subset of candidates that keep the line intact.
func (d *Decision) NoNewlines() []Split {
	return filterSplits(d.Splits, func(s Split) bool { return s.Kind != NewlineSplit })
}

// String renders the decision for diagnostics.
func (d *Decision) String() string {
	parts := make([]string, 0, len(d.Splits))
	for _, s := range d.Splits {
		parts = append(parts, s.String())
	}
	return fmt.Sprintf("%s{%s}", d.FormatToken, strings.Join(parts, ","))
}

func filterSplits(splits []Split, keep func(Split) bool) []Split {
	out := make([]Split, 0, len(splits))
	for _, s := range splits {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
