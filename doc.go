// Package gsearch provides a generic informed-search (A*) engine.
//
// A caller describes a state space by implementing Problem: the initial state,
// the operators applicable to a state and a goal test. The engine is generic
// over the state type and the numeric cost type and exposes two entry points:
//
//   - Searcher.Search: run the algorithm to completion and get a Result.
//   - Stepper: advance the search one expansion at a time to drive UIs or debugging tools.
//
// Duplicate states are resolved by keeping the lowest known path cost; superseded
// queue entries are discarded lazily when they reach the front of the queue.
// With an admissible and consistent heuristic the first goal node popped is optimal.
//
// The npuzzle subpackage instantiates the engine for the sliding-tile puzzle.
package gsearch
