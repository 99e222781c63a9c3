package policy

import (
	"fmt"

	"mercator-hq/callisto/pkg/format/token"
)

// Factory derives an override function from a nested rule. It is re-invoked
// every time the nested rule changes, so the returned function must close
// over its argument only, never over state captured outside the call.
type Factory func(inner Policy) ApplyFunc

// Proxy is a leaf rule whose override behavior is a function of another,
// independently narrowing rule: while the proxy's own End boundary holds, it
// delegates to whatever the factory derives from the current inner rule.
type Proxy struct {
	label   string
	end     End
	inner   Policy
	factory Factory
	apply   ApplyFunc
}

// NewProxy constructs a proxy over inner. Construction short-circuits to
// NoPolicy when inner is already empty, so a proxy never outlives the rule
// set it delegates to. The override function is derived eagerly from the
// current inner value; whenever Unexpired or Filter change the inner rule
// the proxy is rebuilt and the factory re-run, never memoized against a
// stale inner.
func NewProxy(label string, inner Policy, end End, factory Factory) Policy {
	if inner == NoPolicy {
		return NoPolicy
	}
	return &Proxy{
		label:   label,
		end:     end,
		inner:   inner,
		factory: factory,
		apply:   factory(inner),
	}
}

// Label returns the provenance label attached at construction.
func (p *Proxy) Label() string { return p.label }

// End returns the proxy's own expiration boundary.
func (p *Proxy) End() End { return p.end }

// Inner returns the current nested rule.
func (p *Proxy) Inner() Policy { return p.inner }

// TryApply applies the override derived from the current inner rule.
func (p *Proxy) TryApply(d *token.Decision) ([]token.Split, bool) {
	return p.apply(d)
}

// Unexpired returns NoPolicy once the proxy's own End boundary has passed,
// and otherwise rebuilds the proxy over the narrowed inner rule.
func (p *Proxy) Unexpired(ft *token.FormatToken) Policy {
	if !p.end.NotExpiredBy(ft) {
		return NoPolicy
	}
	inner := p.inner.Unexpired(ft)
	if inner == p.inner {
		return p
	}
	return NewProxy(p.label, inner, p.end, p.factory)
}

// Filter returns NoPolicy when the proxy itself fails the predicate, and
// otherwise rebuilds the proxy over the filtered inner rule.
func (p *Proxy) Filter(pred Predicate) Policy {
	if !pred(p) {
		return NoPolicy
	}
	inner := p.inner.Filter(pred)
	if inner == p.inner {
		return p
	}
	return NewProxy(p.label, inner, p.end, p.factory)
}

// Exists reports whether the predicate holds for the proxy itself or for
// any leaf of the inner rule.
func (p *Proxy) Exists(pred Predicate) bool {
	return pred(p) || p.inner.Exists(pred)
}

// NoDequeue delegates to the inner rule; a proxy itself never blocks.
func (p *Proxy) NoDequeue() bool { return p.inner.NoDequeue() }

// String renders the proxy's provenance and the inner rule it delegates to.
func (p *Proxy) String() string {
	return fmt.Sprintf("proxy:%s<%s(%s)", p.label, p.end, p.inner)
}
