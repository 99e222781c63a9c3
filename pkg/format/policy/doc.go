// Package policy implements the non-local constraint algebra of the
// formatting engine: immutable, composable rules that conditionally override
// the candidate splits of future decisions within a bounded range of the
// token scan.
//
// # Model
//
// A Policy is one of a closed set of variants:
//
//   - NoPolicy: the canonical empty rule. It matches nothing, never expires,
//     and is the identity for both combinators. It is a single process-wide
//     value compared by identity; no other "empty" instance may ever exist.
//   - Clause: a leaf rule pairing a partial override function with an End
//     boundary, an optional block-dequeue flag, and a provenance label.
//   - AndThen: sequential composition built by And. The first operand
//     narrows the decision, the second narrows the result.
//   - OrElse: first-match composition built by Or. The first operand wins
//     wherever its override is defined.
//   - Proxy: a leaf whose override function is derived from a nested policy
//     and re-derived whenever the nested policy changes.
//
// # Usage
//
// The search engine holds one Policy per in-progress path. Before evaluating
// a decision it calls Unexpired with the current boundary to drop rules whose
// range has passed, applies TryApply to obtain the effective candidates
// (an undefined override is the normal "does not apply" case, not an error),
// and composes newly attached rules with And or Or. Composition never
// mutates an operand, so paths share structure freely.
//
//	p := policy.And(held, attached)
//	p = p.Unexpired(boundary)
//	if splits, ok := p.TryApply(decision); ok {
//		decision = decision.WithSplits(splits)
//	}
//
// Expiration is monotonic: once Unexpired yields NoPolicy for a rule lineage,
// every later boundary in the same scan yields NoPolicy as well.
package policy
