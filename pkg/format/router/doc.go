// Package router enumerates the candidate splits for every token boundary
// and pairs each candidate with the policy the search engine must attach
// when that candidate is chosen.
//
// The router is language-agnostic: it works from token classes and bracket
// pairing only. Its shipped rules are:
//
//   - Open bracket, break chosen: attach a rule set (End.On the closer)
//     forcing a break before the closer and, through a delegating proxy,
//     after every separator directly inside the pair.
//   - Open bracket, no break chosen: attach a single-line rule (End.On the
//     closer) stripping newline candidates, flagged no-dequeue so the
//     holding search state stays pending while the rule is active.
//   - Comments and terminators: newline-only boundaries. The engine drops
//     single-line rules that would contradict a forced break (see
//     SingleLinePrefix).
package router
