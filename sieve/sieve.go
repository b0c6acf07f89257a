package sieve

import (
	"context"
	"time"

	"github.com/primekit/primekit/lazyseq"
	"github.com/primekit/primekit/logger"
)

// NewPrimeSequence returns a fresh, infinite, pull-based sequence of primes
// positioned at the start. The sequence is cold: every consumption builds its
// own engine, so independently created consumers see identical results.
func NewPrimeSequence(opts ...Option) *lazyseq.Sequence[int64] {
	return lazyseq.FromFunc(func(_ context.Context) lazyseq.Iterator[int64] {
		return &engineIter{eng: NewEngine(opts...)}
	})
}

// Primes takes the first n primes. It is a convenience wrapper around
// NewPrimeSequence and lazyseq.Take that also records take metrics when the
// engine has them enabled. After the bounded take the engine is exhausted;
// no further stages are constructed.
func Primes(ctx context.Context, n int64, opts ...Option) ([]int64, error) {
	eng := NewEngine(opts...)
	defer eng.Close()

	start := time.Now()
	out, err := lazyseq.Take(ctx, lazyseq.From[int64](&engineIter{eng: eng}), n)
	if err != nil {
		eng.log.Error("take failed", logger.ErrorFields("take", err))
		return nil, err
	}

	if eng.metrics != nil {
		eng.metrics.RecordTake(ctx, eng.id, n, time.Since(start))
	}
	eng.log.Debug("take completed", logger.Fields(
		logger.FieldSequenceID, eng.id,
		logger.FieldCount, len(out),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return out, nil
}

// engineIter adapts an Engine to the lazyseq.Iterator interface. The stream
// is infinite, so it never reports normal exhaustion; errors are typed
// failures from the engine (overflow, pull after close).
type engineIter struct {
	eng *Engine
}

func (it *engineIter) Next(ctx context.Context) (int64, bool, error) {
	v, err := it.eng.Next(ctx)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func (it *engineIter) Close() error { return it.eng.Close() }
