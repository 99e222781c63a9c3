package policy

import (
	"fmt"

	"mercator-hq/callisto/pkg/format/token"
)

// And composes two rules sequentially: the first narrows the decision, the
// second narrows the result. The combined override is defined wherever
// either operand's is. And is the only constructor for the sequential
// composite; it short-circuits to the other operand when one is NoPolicy, so
// no-op nodes never accumulate. Operands are never modified.
func And(p1, p2 Policy) Policy {
	if p1 == NoPolicy {
		return p2
	}
	if p2 == NoPolicy {
		return p1
	}
	return &andThen{p1: p1, p2: p2}
}

// Or composes two rules with first-match semantics: wherever the first
// operand's override is defined it wins; otherwise the second applies. Or is
// the only constructor for the first-match composite and short-circuits on
// NoPolicy operands.
func Or(p1, p2 Policy) Policy {
	if p1 == NoPolicy {
		return p2
	}
	if p2 == NoPolicy {
		return p1
	}
	return &orElse{p1: p1, p2: p2}
}

type andThen struct {
	p1, p2 Policy
}

func (p *andThen) TryApply(d *token.Decision) ([]token.Split, bool) {
	s1, ok1 := p.p1.TryApply(d)
	if ok1 {
		// Re-tag so the second operand sees the narrowed candidates.
		d = d.WithSplits(s1)
	}
	if s2, ok2 := p.p2.TryApply(d); ok2 {
		return s2, true
	}
	if ok1 {
		return s1, true
	}
	return nil, false
}

func (p *andThen) Unexpired(ft *token.FormatToken) Policy {
	return recombine(p, And, p.p1.Unexpired(ft), p.p2.Unexpired(ft))
}

func (p *andThen) Filter(pred Predicate) Policy {
	return recombine(p, And, p.p1.Filter(pred), p.p2.Filter(pred))
}

func (p *andThen) Exists(pred Predicate) bool {
	return p.p1.Exists(pred) || p.p2.Exists(pred)
}

func (p *andThen) NoDequeue() bool {
	return p.p1.NoDequeue() || p.p2.NoDequeue()
}

func (p *andThen) String() string {
	return fmt.Sprintf("(%s & %s)", p.p1, p.p2)
}

type orElse struct {
	p1, p2 Policy
}

func (p *orElse) TryApply(d *token.Decision) ([]token.Split, bool) {
	if s, ok := p.p1.TryApply(d); ok {
		return s, true
	}
	return p.p2.TryApply(d)
}

func (p *orElse) Unexpired(ft *token.FormatToken) Policy {
	return recombine(p, Or, p.p1.Unexpired(ft), p.p2.Unexpired(ft))
}

func (p *orElse) Filter(pred Predicate) Policy {
	return recombine(p, Or, p.p1.Filter(pred), p.p2.Filter(pred))
}

func (p *orElse) Exists(pred Predicate) bool {
	return p.p1.Exists(pred) || p.p2.Exists(pred)
}

func (p *orElse) NoDequeue() bool {
	return p.p1.NoDequeue() || p.p2.NoDequeue()
}

func (p *orElse) String() string {
	return fmt.Sprintf("(%s | %s)", p.p1, p.p2)
}

// recombine rebuilds a composite from its narrowed branches with the same
// combinator kind, preserving the original value when neither branch
// changed. The constructor's short-circuit rule degrades the composite
// toward the surviving branch when one side emptied.
func recombine(orig interface{ branches() (Policy, Policy) }, combine func(Policy, Policy) Policy, q1, q2 Policy) Policy {
	p1, p2 := orig.branches()
	if q1 == p1 && q2 == p2 {
		return orig.(Policy)
	}
	return combine(q1, q2)
}

func (p *andThen) branches() (Policy, Policy) { return p.p1, p.p2 }
func (p *orElse) branches() (Policy, Policy)  { return p.p1, p.p2 }
