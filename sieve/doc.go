// Package sieve implements an incremental, lazily-evaluated Sieve of
// Eratosthenes over an unbounded stream of natural numbers.
//
// Conceptually the sieve is a chain of filter stages: each discovered prime
// contributes one immutable Stage that removes its multiples from the
// remaining stream. A Stage freezes its divisor at construction; the
// predicate it produces is bound to that value forever, never to storage
// that a later discovery could overwrite. The engine realizes the chain as
// an explicit ordered stage list scanned iteratively per candidate, so pull
// depth stays constant no matter how many primes have been discovered; the
// semantics are identical to nesting Drop(1)+Filter compositions.
//
// Nothing is computed until the consumer pulls:
//
//	seq := sieve.NewPrimeSequence()
//	first, err := lazyseq.Take(ctx, seq, 10)
//	// first == [2 3 5 7 11 13 17 19 23 29]
package sieve
