package policy

import (
	"testing"
)

// buildDeepPolicy composes n clauses into an alternating And/Or tree, the
// shape a long scan with many attached rules produces.
func buildDeepPolicy(n int) Policy {
	p := NoPolicy
	for i := 0; i < n; i++ {
		c := forceClause("bench", After(i*10+100), i, splitX)
		if i%2 == 0 {
			p = And(p, c)
		} else {
			p = Or(p, c)
		}
	}
	return p
}

func BenchmarkTryApply_Deep(b *testing.B) {
	p := buildDeepPolicy(32)
	d := decisionAt(16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.TryApply(d)
	}
}

func BenchmarkUnexpired_Deep(b *testing.B) {
	p := buildDeepPolicy(32)
	ft := boundary(150, 152)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Unexpired(ft)
	}
}

func BenchmarkAnd_ShortCircuit(b *testing.B) {
	c := forceClause("bench", After(100), 0, splitX)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		And(c, NoPolicy)
	}
}
