package engine

import (
	"context"
	"fmt"

	"mercator-hq/callisto/pkg/format/optimizer"
	"mercator-hq/callisto/pkg/format/policy"
	"mercator-hq/callisto/pkg/format/router"
	"mercator-hq/callisto/pkg/format/token"
)

// BoundaryReport describes one boundary of an explained layout.
type BoundaryReport struct {
	// Index is the boundary's position, equal to the left token index.
	Index int

	// Left and Right are the adjacent token texts.
	Left  string
	Right string

	// Candidates lists the selectable splits with their rule attachments.
	Candidates []string

	// Chosen is the split the search selected.
	Chosen string
}

// Explanation is a per-boundary account of one layout decision.
type Explanation struct {
	// Language is the frontend that tokenized the file.
	Language string

	// Cost is the total cost of the chosen layout.
	Cost int

	// Boundaries reports every boundary in order.
	Boundaries []BoundaryReport
}

// Explain formats a file and reports, per boundary, which splits were on
// offer, which formatting rules each would attach, and which split won.
func (e *Engine) Explain(ctx context.Context, path string, src []byte) (*Explanation, error) {
	tok, err := e.registry.ForFile(path)
	if err != nil {
		return nil, err
	}

	tokens, err := tok.Tokenize(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize %s: %w", path, err)
	}

	exp := &Explanation{Language: tok.Language()}
	if len(tokens) == 0 {
		return exp, nil
	}

	rt := router.New(router.Config{NewlinePenalty: e.cfg.NewlinePenalty}, tokens)
	opt := optimizer.New(optimizer.Config{
		MaxWidth:        e.cfg.MaxWidth,
		IndentWidth:     e.cfg.IndentWidth,
		OverflowPenalty: e.cfg.OverflowPenalty,
		MaxStates:       e.cfg.MaxStates,
	}, e.logger.Slog())

	search, err := opt.Search(ctx, tokens, rt)
	if err != nil {
		return nil, fmt.Errorf("layout search failed for %s: %w", path, err)
	}
	exp.Cost = search.Cost

	for _, ft := range token.Boundaries(tokens) {
		report := BoundaryReport{
			Index: ft.Index,
			Left:  ft.Left.Text,
			Right: ft.Right.Text,
		}
		for _, c := range rt.Route(ft).Candidates {
			desc := c.Split.String()
			if c.Attach != policy.NoPolicy {
				desc += " attaching " + c.Attach.String()
			}
			report.Candidates = append(report.Candidates, desc)
		}
		if ft.Index < len(search.Splits) {
			report.Chosen = search.Splits[ft.Index].String()
		}
		exp.Boundaries = append(exp.Boundaries, report)
	}

	return exp, nil
}
