package optimizer

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mercator-hq/callisto/pkg/format/policy"
	"mercator-hq/callisto/pkg/format/router"
	"mercator-hq/callisto/pkg/format/token"
)

var (
	// ErrNoLayout is returned when every search path dies, which only
	// happens when attached rules contradict a forced break.
	ErrNoLayout = errors.New("no layout satisfies the active rules")

	// ErrSearchBudget is returned when the search exceeds MaxStates.
	ErrSearchBudget = errors.New("layout search exceeded its state budget")
)

// Config controls the search cost model and budget.
type Config struct {
	// MaxWidth is the target line width; columns beyond it cost
	// OverflowPenalty each.
	MaxWidth int

	// IndentWidth is the column width of one indent level.
	IndentWidth int

	// OverflowPenalty is the cost per column past MaxWidth.
	OverflowPenalty int

	// MaxStates bounds the number of states explored before the search
	// gives up.
	MaxStates int
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return Config{
		MaxWidth:        80,
		IndentWidth:     4,
		OverflowPenalty: 10,
		MaxStates:       100000,
	}
}

// Result is the outcome of one search.
type Result struct {
	// Splits holds the chosen split per boundary, in boundary order.
	Splits []token.Split

	// Cost is the accumulated cost of the chosen layout.
	Cost int

	// Explored is the number of states expanded.
	Explored int

	// Pruned is the number of dominated states dropped at dequeue time.
	Pruned int

	// BlockedRetained is the number of states that escaped pruning because
	// their policy reported NoDequeue.
	BlockedRetained int
}

// Optimizer runs best-first layout searches.
type Optimizer struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an optimizer. A nil logger falls back to slog.Default.
func New(cfg Config, logger *slog.Logger) *Optimizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Optimizer{cfg: cfg, logger: logger.With("component", "format.optimizer")}
}

// Search selects the lowest-cost split per boundary of the token slice,
// consulting rt for candidates and attachments. It honors ctx cancellation
// between expansions.
func (o *Optimizer) Search(ctx context.Context, tokens []token.Token, rt *router.Router) (*Result, error) {
	boundaries := token.Boundaries(tokens)
	if len(boundaries) == 0 {
		return &Result{}, nil
	}

	var res Result
	q := newStateQueue()
	heap.Push(q, &state{
		column: len(tokens[0].Text),
		policy: policy.NoPolicy,
	})

	settled := make(map[stateKey]int)

	for q.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s := heap.Pop(q).(*state)

		// Dequeue-time domination pruning. States holding a blocking rule
		// are not eligible for removal and stay in play.
		key := s.key()
		if best, ok := settled[key]; ok && best <= s.cost {
			if s.policy.NoDequeue() {
				res.BlockedRetained++
			} else {
				res.Pruned++
				continue
			}
		} else {
			settled[key] = s.cost
		}

		if s.pos == len(boundaries) {
			res.Splits = s.chain.collect(len(boundaries))
			res.Cost = s.cost
			o.logger.Debug("layout search complete",
				"boundaries", len(boundaries),
				"cost", res.Cost,
				"explored", res.Explored,
				"pruned", res.Pruned,
			)
			return &res, nil
		}

		res.Explored++
		if res.Explored > o.cfg.MaxStates {
			return nil, fmt.Errorf("%w: %d states", ErrSearchBudget, o.cfg.MaxStates)
		}

		o.expand(s, boundaries[s.pos], rt, q)
	}

	return nil, ErrNoLayout
}

// expand pushes one child state per candidate surviving the policy override.
func (o *Optimizer) expand(s *state, ft *token.FormatToken, rt *router.Router, q *stateQueue) {
	held := s.policy.Unexpired(ft)
	if ft.Left.Class == token.ClassComment || ft.Left.Class == token.ClassTerminator {
		// The boundary breaks unconditionally; single-line rules spanning it
		// can never be satisfied and are pruned rather than left to kill
		// the path.
		held = held.Filter(func(l policy.Leaf) bool { return !router.IsSingleLine(l) })
	}
	routed := rt.Route(ft)

	d := routed.Decision
	if splits, ok := held.TryApply(d); ok {
		d = d.WithSplits(splits)
	}

	for _, split := range d.Splits {
		child := &state{
			pos:    s.pos + 1,
			indent: s.indent,
			cost:   s.cost + split.Penalty,
			policy: policy.And(held, routed.AttachFor(split)),
			chain:  &chosen{prev: s.chain, split: split},
		}

		switch split.Kind {
		case token.NewlineSplit:
			child.indent += split.IndentDelta
			if child.indent < 0 {
				child.indent = 0
			}
			child.column = child.indent*o.cfg.IndentWidth + len(ft.Right.Text)
		case token.SpaceSplit:
			child.column = s.column + 1 + len(ft.Right.Text)
		default:
			child.column = s.column + len(ft.Right.Text)
		}

		if child.column > o.cfg.MaxWidth {
			over := child.column - o.cfg.MaxWidth
			if s.column > o.cfg.MaxWidth && split.Kind != token.NewlineSplit {
				// Charge only the newly overflowed columns.
				over = child.column - s.column
			}
			if over > 0 {
				child.cost += over * o.cfg.OverflowPenalty
			}
		}

		heap.Push(q, child)
	}
}

// chosen is a persistent chain of split choices shared across child states.
type chosen struct {
	prev  *chosen
	split token.Split
}

// collect materializes the chain into boundary order.
func (c *chosen) collect(n int) []token.Split {
	out := make([]token.Split, n)
	for i := n - 1; c != nil; i-- {
		out[i] = c.split
		c = c.prev
	}
	return out
}
