// Package lazyseq provides composable, pull-based lazy sequences.
//
// Sequences are cold and lazy: composition via Drop, Filter, Map, or Tap
// builds a new sequence description without pulling anything; work happens
// only when values are pulled via Take, Collect, Drain, ForEach, or an
// Iterator obtained from Iter. Each Iter call starts a fresh iterator from
// the sequence's source, so a cold sequence can be re-consumed; a live
// iterator, once advanced, never replays earlier elements.
//
// Operator arguments are captured at composition time. A predicate passed to
// Filter should close over value snapshots, not over mutable storage that may
// be reassigned after composition. The predicate runs later, at pull time,
// and will observe whatever the captured storage holds then.
//
// # Sources
//
//   - FromSlice: finite sequence over a slice
//   - Generate: infinite sequence from a pure index→value function
//   - Naturals: consecutive integers from a start value
//   - From, FromFunc: adapt an existing Iterator or factory
//
// # Usage
//
//	naturals := lazyseq.Naturals(2)
//	odd := lazyseq.Filter(naturals, func(n int64) bool { return n%2 != 0 })
//	firstFive, err := lazyseq.Take(ctx, odd, 5)
package lazyseq
