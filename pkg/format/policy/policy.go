package policy

import (
	"mercator-hq/callisto/pkg/format/token"
)

// ApplyFunc is a partial decision-override function. It returns the
// replacement candidate splits and true when it recognizes the decision, or
// (nil, false) when the decision is outside its domain. An undefined result
// is the normal "does not apply" case; callers treat it as pass-through.
type ApplyFunc func(d *token.Decision) ([]token.Split, bool)

// Leaf is a leaf rule: a Clause or a Proxy. Filter and Exists predicates are
// evaluated against leaves, never against composites.
type Leaf interface {
	Policy

	// Label returns the provenance label attached at construction.
	Label() string

	// End returns the rule's expiration boundary.
	End() End
}

// Predicate is a structural test over leaf rules, used by Filter and Exists.
type Predicate func(l Leaf) bool

// Policy is an immutable, composable rule that conditionally overrides a
// decision's candidate splits within a bounded range of the scan. Every
// transformation returns a new or identical value; a Policy is never mutated
// after construction, so values may be shared across search paths without
// synchronization.
type Policy interface {
	// TryApply applies the rule's override to a decision. It returns the
	// replacement splits and true when the override is defined for the
	// decision, or (nil, false) when it is not.
	TryApply(d *token.Decision) ([]token.Split, bool)

	// Unexpired returns the rule with every sub-rule whose range has passed
	// the given boundary removed. A fully expired rule degrades to NoPolicy.
	Unexpired(ft *token.FormatToken) Policy

	// Filter prunes leaf rules failing the predicate, returning the
	// surviving rule structure or NoPolicy.
	Filter(pred Predicate) Policy

	// Exists reports whether any leaf rule satisfies the predicate.
	Exists(pred Predicate) bool

	// NoDequeue reports whether any active leaf rule forbids removing the
	// holding search state from its scheduling structure. For composites it
	// is the logical OR across branches.
	NoDequeue() bool

	// String renders the rule's provenance for diagnostics: label, End kind
	// and offset, block-dequeue flag, and both sub-rules for composites.
	String() string
}

// NoPolicy is the canonical empty rule: it matches nothing, never expires,
// and is the identity element for And and Or. Emptiness is defined by
// identity against this single value; no code path may construct another
// empty instance.
var NoPolicy Policy = &noPolicy{}

type noPolicy struct{}

func (*noPolicy) TryApply(*token.Decision) ([]token.Split, bool) { return nil, false }
func (p *noPolicy) Unexpired(*token.FormatToken) Policy          { return p }
func (p *noPolicy) Filter(Predicate) Policy                      { return p }
func (*noPolicy) Exists(Predicate) bool                          { return false }
func (*noPolicy) NoDequeue() bool                                { return false }
func (*noPolicy) String() string                                 { return "NoPolicy" }
