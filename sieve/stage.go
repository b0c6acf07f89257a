package sieve

import "github.com/primekit/primekit/lazyseq"

// Stage is one immutable filter unit bound to a single discovered prime.
// The divisor is assigned exactly once, here, and is never written again;
// every predicate derived from the Stage tests against this frozen value.
type Stage struct {
	divisor int64
	index   int
}

// newStage binds a Stage to the value of divisor at the moment of creation.
func newStage(divisor int64, index int) Stage {
	return Stage{divisor: divisor, index: index}
}

// Divisor returns the prime this stage filters by.
func (s Stage) Divisor() int64 { return s.divisor }

// Index returns the stage's position in discovery order, starting at 0.
func (s Stage) Index() int { return s.index }

// Rejects reports whether candidate is a multiple of the stage's divisor.
func (s Stage) Rejects(candidate int64) bool {
	return candidate%s.divisor == 0
}

// Predicate returns the keep-predicate for this stage. The returned closure
// captures the divisor by value; reassigning anything outside the Stage
// cannot change what it tests against.
func (s Stage) Predicate() func(int64) bool {
	d := s.divisor
	return func(n int64) bool { return n%d != 0 }
}

// Compose extends upstream with this stage: the prime itself is dropped,
// then every remaining multiple of the divisor is filtered out. This is the
// pipeline form of the stage; the engine's iterative stage scan computes the
// same stream without nesting iterators.
func (s Stage) Compose(upstream *lazyseq.Sequence[int64]) *lazyseq.Sequence[int64] {
	return lazyseq.Filter(lazyseq.Drop(upstream, 1), s.Predicate())
}
