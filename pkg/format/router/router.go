package router

import (
	"mercator-hq/callisto/pkg/format/policy"
	"mercator-hq/callisto/pkg/format/token"
)

// Candidate is one selectable layout action at a boundary together with the
// policy to attach to the search path if it is chosen. Attach is NoPolicy
// for candidates that create no future obligation.
type Candidate struct {
	// Split is the layout action.
	Split token.Split

	// Attach is composed (with policy.And) into the path's held policy when
	// this candidate is chosen.
	Attach policy.Policy
}

// Boundary is a routed boundary: the decision carrying the default candidate
// splits, plus the candidate records pairing each split with its attachment.
// Candidates[i] corresponds to Decision.Splits[i].
type Boundary struct {
	// Decision is the default decision for the boundary.
	Decision *token.Decision

	// Candidates pairs every default split with its policy attachment.
	Candidates []Candidate
}

// AttachFor returns the attachment for a chosen split, or NoPolicy when the
// split is not one of the boundary's candidates. Policies may narrow the
// decision's splits; survivors are matched back by value.
func (b *Boundary) AttachFor(s token.Split) policy.Policy {
	for _, c := range b.Candidates {
		if c.Split == s {
			return c.Attach
		}
	}
	return policy.NoPolicy
}

// Config controls the router's split penalties.
type Config struct {
	// NewlinePenalty is the base cost of breaking a line.
	NewlinePenalty int
}

// DefaultConfig returns the default router configuration.
func DefaultConfig() Config {
	return Config{NewlinePenalty: 1}
}

// Router enumerates candidates for the boundaries of one token slice. A
// Router is bound to the slice it was built from; bracket pairing is
// computed once at construction.
type Router struct {
	cfg    Config
	tokens []token.Token
	pairs  map[int]int
}

// New builds a router over a token slice.
func New(cfg Config, tokens []token.Token) *Router {
	return &Router{cfg: cfg, tokens: tokens, pairs: token.MatchBrackets(tokens)}
}

// Route produces the routed boundary for ft. The boundary's left token index
// equals ft.Index.
func (r *Router) Route(ft *token.FormatToken) *Boundary {
	left, right := ft.Left, ft.Right
	pen := r.cfg.NewlinePenalty

	var cands []Candidate
	switch {
	case left.Class == token.ClassComment:
		// Line comments own the rest of their line.
		cands = []Candidate{
			{Split: token.Split{Kind: token.NewlineSplit}},
		}

	case left.Class == token.ClassTerminator:
		cands = []Candidate{
			{Split: token.Split{Kind: token.NewlineSplit}},
		}

	case right.Class == token.ClassSeparator || right.Class == token.ClassTerminator:
		// Never detach a separator from the element it follows.
		cands = []Candidate{
			{Split: token.Split{Kind: token.NoSplit}},
		}

	case left.Class == token.ClassOpenBracket:
		cands = r.openBracketCandidates(ft)

	case right.Class == token.ClassCloseBracket:
		cands = []Candidate{
			{Split: token.Split{Kind: token.NoSplit}},
			{Split: token.Split{Kind: token.NewlineSplit, IndentDelta: -1, Penalty: pen}},
		}

	case left.Class == token.ClassSeparator:
		cands = []Candidate{
			{Split: token.Split{Kind: token.SpaceSplit}},
			{Split: token.Split{Kind: token.NewlineSplit, Penalty: pen}},
		}

	case right.Class == token.ClassOpenBracket:
		// Callee and opener stay glued.
		cands = []Candidate{
			{Split: token.Split{Kind: token.NoSplit}},
		}

	default:
		cands = []Candidate{
			{Split: token.Split{Kind: token.SpaceSplit}},
			{Split: token.Split{Kind: token.NewlineSplit, Penalty: pen}},
		}
	}

	for i := range cands {
		if cands[i].Attach == nil {
			cands[i].Attach = policy.NoPolicy
		}
	}

	splits := make([]token.Split, len(cands))
	for i, c := range cands {
		splits[i] = c.Split
	}
	return &Boundary{
		Decision:   token.NewDecision(ft, splits),
		Candidates: cands,
	}
}

// openBracketCandidates builds the flat and broken alternatives after an
// opening bracket, each with its consistency policy.
func (r *Router) openBracketCandidates(ft *token.FormatToken) []Candidate {
	pen := r.cfg.NewlinePenalty
	open := ft.Index

	closer, ok := r.pairs[open]
	if !ok {
		// Unbalanced source: no obligation either way.
		return []Candidate{
			{Split: token.Split{Kind: token.NoSplit}},
			{Split: token.Split{Kind: token.NewlineSplit, IndentDelta: 1, Penalty: pen}},
		}
	}

	return []Candidate{
		{
			Split:  token.Split{Kind: token.NoSplit},
			Attach: SingleLine(r.tokens[open], r.tokens[closer]),
		},
		{
			Split:  token.Split{Kind: token.NewlineSplit, IndentDelta: 1, Penalty: pen},
			Attach: BrokenBracket(r.tokens, open, closer),
		},
	}
}
