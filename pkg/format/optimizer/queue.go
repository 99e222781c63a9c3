package optimizer

import (
	"mercator-hq/callisto/pkg/format/policy"
)

// state is one node of the layout search.
type state struct {
	// pos is the index of the next boundary to decide; pos equal to the
	// boundary count marks a complete layout.
	pos int

	// column is the column after emitting the token left of boundary pos.
	column int

	// indent is the current indent level.
	indent int

	// cost is the accumulated cost along this path.
	cost int

	// policy is the composed rule set attached by earlier choices.
	policy policy.Policy

	// chain records the choices made so far; shared between siblings.
	chain *chosen

	// seq orders states of equal cost and depth deterministically.
	seq uint64
}

// stateKey identifies states that are interchangeable for domination
// pruning: same position, same column, same indent.
type stateKey struct {
	pos    int
	column int
	indent int
}

func (s *state) key() stateKey {
	return stateKey{pos: s.pos, column: s.column, indent: s.indent}
}

// stateQueue is a best-first priority queue: lowest cost first, deeper
// states before shallower ones at equal cost, insertion order as the final
// tie-break so searches are deterministic.
type stateQueue struct {
	states  []*state
	nextSeq uint64
}

func newStateQueue() *stateQueue {
	return &stateQueue{}
}

func (q *stateQueue) Len() int { return len(q.states) }

func (q *stateQueue) Less(i, j int) bool {
	a, b := q.states[i], q.states[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.pos != b.pos {
		return a.pos > b.pos
	}
	return a.seq < b.seq
}

func (q *stateQueue) Swap(i, j int) {
	q.states[i], q.states[j] = q.states[j], q.states[i]
}

func (q *stateQueue) Push(x any) {
	s := x.(*state)
	s.seq = q.nextSeq
	q.nextSeq++
	q.states = append(q.states, s)
}

func (q *stateQueue) Pop() any {
	old := q.states
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	q.states = old[:n-1]
	return s
}
