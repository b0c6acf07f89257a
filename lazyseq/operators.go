package lazyseq

import "context"

// Drop returns a sequence that skips the first n elements of s.
// Nothing is consumed at composition time; skipping happens on the first pull
// of the returned sequence.
func Drop[T any](s *Sequence[T], n int64) *Sequence[T] {
	if n <= 0 {
		return s
	}
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &dropIter[T]{source: s.create(ctx), n: n}
		},
	}
}

// Filter keeps only values that satisfy the predicate. The predicate is
// evaluated lazily, once per candidate, in upstream order. Its free variables
// are captured when Filter is called; bind value snapshots, not shared
// mutable cells, when the predicate's correctness depends on a fixed value.
func Filter[T any](s *Sequence[T], fn func(T) bool) *Sequence[T] {
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &filterIter[T]{source: s.create(ctx), fn: fn}
		},
	}
}

// Map transforms each value using fn.
func Map[I, O any](s *Sequence[I], fn func(context.Context, I) (O, error)) *Sequence[O] {
	return &Sequence[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &mapIter[I, O]{source: s.create(ctx), fn: fn}
		},
	}
}

// Tap calls fn as a side-effect for each pulled value, then passes the value
// through unchanged. Use for logging or metrics.
func Tap[T any](s *Sequence[T], fn func(context.Context, T) error) *Sequence[T] {
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &tapIter[T]{source: s.create(ctx), fn: fn}
		},
	}
}

// --- Iterator implementations ---

type dropIter[T any] struct {
	source  Iterator[T]
	n       int64
	skipped bool
}

func (it *dropIter[T]) Next(ctx context.Context) (T, bool, error) {
	if !it.skipped {
		it.skipped = true
		for i := int64(0); i < it.n; i++ {
			if _, ok, err := it.source.Next(ctx); err != nil || !ok {
				var zero T
				return zero, false, err
			}
		}
	}
	return it.source.Next(ctx)
}

func (it *dropIter[T]) Close() error { return it.source.Close() }

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.fn(val) {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T) error
}

func (it *tapIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(ctx, val); err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }
