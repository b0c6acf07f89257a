package lazyseq

import (
	"context"

	"github.com/primekit/primekit/errors"
	"github.com/primekit/primekit/util"
)

// Iterator provides pull-based sequential access to a stream of values.
// Next returns (zero, false, nil) when the stream is exhausted; sequences
// built from infinite sources never report exhaustion.
type Iterator[T any] interface {
	// Next advances the iterator by exactly one element.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Sequence represents a cold, lazy, pull-based sequence.
// No work happens until values are pulled via Take, Collect, Drain, or ForEach.
type Sequence[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// --- Constructors ---

// From creates a sequence from an existing Iterator. The resulting sequence
// is only as re-consumable as the iterator behind it: every Iter call returns
// the same live iterator.
func From[T any](iter Iterator[T]) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a finite sequence over a slice of values.
func FromSlice[T any](items []T) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a sequence from a factory that produces an Iterator.
// The factory runs once per consumption, so the sequence stays cold.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Sequence[T] {
	return &Sequence[T]{create: fn}
}

// Generate creates an infinite sequence from a pure index→value function.
// The function is stateless with respect to the sequence: element i is
// always fn(i), so the sequence restarts cleanly on each consumption.
func Generate[T any](fn func(i int64) (T, error)) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			return &generateIter[T]{fn: fn}
		},
	}
}

// Naturals creates the infinite sequence start, start+1, start+2, ...
// Incrementing past the int64 range surfaces a NUMERIC_OVERFLOW failure.
func Naturals(start int64) *Sequence[int64] {
	return Generate(func(i int64) (int64, error) {
		n, ok := util.CheckedAdd(start, i)
		if !ok {
			return 0, errors.Overflow("natural number generation", start)
		}
		return n, nil
	})
}

// --- Terminals ---

// Take eagerly pulls exactly n elements and returns them, or fewer if the
// sequence ends first. It never pulls an (n+1)-th element to decide when to
// stop. n < 0 is an INVALID_ARGUMENT failure.
func Take[T any](ctx context.Context, s *Sequence[T], n int64) ([]T, error) {
	if n < 0 {
		return nil, errors.InvalidArgument("n", "take count must be >= 0")
	}
	result := make([]T, 0, min(n, 1024))
	if n == 0 {
		return result, nil
	}
	iter := s.create(ctx)
	defer iter.Close()
	for int64(len(result)) < n {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
	return result, nil
}

// Collect runs the sequence to exhaustion and returns all values as a slice.
// Never call it on an infinite sequence; use Take instead.
func Collect[T any](ctx context.Context, s *Sequence[T]) ([]T, error) {
	iter := s.create(ctx)
	defer iter.Close()
	var result []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Head pulls the first element of the sequence and closes the iterator.
// On a cold sequence this peeks without consuming: the next consumption
// starts over from the source.
func Head[T any](ctx context.Context, s *Sequence[T]) (T, bool, error) {
	iter := s.create(ctx)
	defer iter.Close()
	return iter.Next(ctx)
}

// Drain pulls all values and sends each to sink.
func Drain[T any](ctx context.Context, s *Sequence[T], sink func(context.Context, T) error) error {
	iter := s.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := sink(ctx, val); err != nil {
			return err
		}
	}
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, s *Sequence[T], fn func(context.Context, T) error) error {
	return Drain(ctx, s, fn)
}

// Iter returns a fresh Iterator for this sequence. The caller must Close() it.
func (s *Sequence[T]) Iter(ctx context.Context) Iterator[T] {
	return s.create(ctx)
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type generateIter[T any] struct {
	fn    func(i int64) (T, error)
	index int64
}

func (it *generateIter[T]) Next(_ context.Context) (T, bool, error) {
	val, err := it.fn(it.index)
	if err != nil {
		var zero T
		return zero, false, err
	}
	it.index++
	return val, true, nil
}

func (it *generateIter[T]) Close() error { return nil }
