// Package optimizer walks the tree of possible layout decisions for a token
// stream and selects a lowest-cost path.
//
// # Search
//
// Each search state pins a position in the boundary sequence, the current
// column and indent, the accumulated cost, and the policy composed from the
// rules attached by earlier choices. States are explored best-first from a
// priority queue ordered by cost (deeper states win ties, so complete
// layouts surface early).
//
// Expanding a state narrows its policy with Unexpired against the current
// boundary, applies the policy override to the routed decision (an undefined
// override leaves the router's defaults in force), and produces one child
// per surviving candidate, composing the candidate's attachment into the
// child's policy.
//
// Dominated states at an already-settled (position, column, indent) key are
// dropped at dequeue time, except states whose policy reports NoDequeue:
// those stay pending until the blocking rule expires, as the rule's contract
// requires.
package optimizer
