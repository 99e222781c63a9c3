package policy

import (
	"fmt"

	"mercator-hq/callisto/pkg/format/token"
)

// Clause is the leaf rule: a labeled, immutable unit pairing a partial
// override function with an expiration boundary and an optional
// block-dequeue flag. Every narrowing operation returns a value; a Clause is
// never mutated in place.
type Clause struct {
	label string
	end   End
	block bool
	apply ApplyFunc
}

// NewClause constructs a leaf rule. The label records provenance for
// diagnostics and structural filtering; apply is the partial override
// function; end bounds the rule's effective range.
func NewClause(label string, end End, apply ApplyFunc) *Clause {
	return &Clause{label: label, end: end, apply: apply}
}

// NewBlockingClause constructs a leaf rule with the block-dequeue flag set:
// while the rule is active, the search state holding it must not be removed
// from its scheduling structure.
func NewBlockingClause(label string, end End, apply ApplyFunc) *Clause {
	return &Clause{label: label, end: end, block: true, apply: apply}
}

// Label returns the provenance label attached at construction.
func (c *Clause) Label() string { return c.label }

// End returns the rule's expiration boundary.
func (c *Clause) End() End { return c.end }

// TryApply applies the override function.
func (c *Clause) TryApply(d *token.Decision) ([]token.Split, bool) {
	return c.apply(d)
}

// Unexpired returns the clause itself while its End boundary holds at the
// given token boundary, and NoPolicy once it has passed.
func (c *Clause) Unexpired(ft *token.FormatToken) Policy {
	if c.end.NotExpiredBy(ft) {
		return c
	}
	return NoPolicy
}

// Filter returns the clause itself when the predicate holds, else NoPolicy.
func (c *Clause) Filter(pred Predicate) Policy {
	if pred(c) {
		return c
	}
	return NoPolicy
}

// Exists reports whether the predicate holds for this clause.
func (c *Clause) Exists(pred Predicate) bool { return pred(c) }

// NoDequeue reports whether the block-dequeue flag was set at construction.
func (c *Clause) NoDequeue() bool { return c.block }

// String renders label, End boundary and block-dequeue flag.
func (c *Clause) String() string {
	flag := ""
	if c.block {
		flag = "!"
	}
	return fmt.Sprintf("%s<%s%s", c.label, c.end, flag)
}
