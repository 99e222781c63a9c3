package policy

import (
	"fmt"

	"mercator-hq/callisto/pkg/format/token"
)

// EndKind selects how an End boundary compares a rule's fixed offset against
// a token boundary.
type EndKind int

const (
	// EndAfter keeps the rule active while the boundary's left token ends at
	// or before the offset: the rule applies through and including the
	// boundary at the offset.
	EndAfter EndKind = iota

	// EndBefore keeps the rule active while the boundary's right token ends
	// strictly before the offset: the rule stops before reaching it.
	EndBefore

	// EndOn keeps the rule active while the boundary's right token ends at
	// or before the offset: the rule applies through the boundary ending
	// exactly there.
	EndOn
)

// String returns the kind's name as used in rule diagnostics.
func (k EndKind) String() string {
	switch k {
	case EndBefore:
		return "Before"
	case EndOn:
		return "On"
	default:
		return "After"
	}
}

// End is the expiration boundary of a rule: a fixed byte offset, captured at
// rule construction, plus a comparison kind. An End is a pure function of a
// token boundary thereafter. Because offsets are non-decreasing along a
// forward scan, every End predicate is monotonic: once expired, expired for
// every later boundary.
type End struct {
	// Kind selects the comparison.
	Kind EndKind

	// Offset is the fixed byte offset the rule expires against, normally the
	// end offset of some token captured when the rule was attached.
	Offset int
}

// After returns an End keeping its rule active while left.End <= offset.
func After(offset int) End { return End{Kind: EndAfter, Offset: offset} }

// Before returns an End keeping its rule active while right.End < offset.
func Before(offset int) End { return End{Kind: EndBefore, Offset: offset} }

// On returns an End keeping its rule active while right.End <= offset.
func On(offset int) End { return End{Kind: EndOn, Offset: offset} }

// NotExpiredBy reports whether the rule owning this End is still active at
// the given boundary.
func (e End) NotExpiredBy(ft *token.FormatToken) bool {
	switch e.Kind {
	case EndBefore:
		return ft.Right.End < e.Offset
	case EndOn:
		return ft.Right.End <= e.Offset
	default:
		return ft.Left.End <= e.Offset
	}
}

// String renders the boundary kind and offset for diagnostics.
func (e End) String() string {
	return fmt.Sprintf("%s:%d", e.Kind, e.Offset)
}
