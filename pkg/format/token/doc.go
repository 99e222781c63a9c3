// Package token defines the lexical model the formatting engine operates on:
// tokens with byte offsets, the boundaries between adjacent tokens, candidate
// layout actions (splits), and the decision negotiated at each boundary.
//
// # Model
//
// A source file is reduced by a language frontend to an ordered slice of
// Tokens, each carrying its start and end byte offset in the original source.
// Between every pair of adjacent tokens sits exactly one FormatToken (the
// boundary), and at every boundary the engine must choose exactly one Split:
//
//	Token[0]  Token[1]  Token[2] ... Token[n-1]
//	        \/        \/
//	   FormatToken FormatToken        (n-1 boundaries)
//
// A Decision pairs a boundary with the ordered candidate Splits currently
// permitted there. Decisions are never mutated: narrowing the candidates
// produces a new Decision via WithSplits.
//
// Offsets are non-decreasing along a forward scan; everything downstream
// (policy expiration in particular) depends on that monotonicity.
package token
