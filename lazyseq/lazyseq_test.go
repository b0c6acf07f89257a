package lazyseq

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	apperrors "github.com/primekit/primekit/errors"
)

func TestFromSlice_Collect(t *testing.T) {
	s := FromSlice([]int64{1, 2, 3})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, 2, 3}
	if !int64SliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	s := FromSlice([]int64{})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestGenerate(t *testing.T) {
	squares := Generate(func(i int64) (int64, error) { return i * i, nil })
	got, err := Take(context.Background(), squares, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{0, 1, 4, 9, 16}
	if !int64SliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNaturals(t *testing.T) {
	got, err := Take(context.Background(), Naturals(2), 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{2, 3, 4, 5}
	if !int64SliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNaturals_Overflow(t *testing.T) {
	s := Naturals(math.MaxInt64)
	ctx := context.Background()
	iter := s.Iter(ctx)
	defer iter.Close()

	v, ok, err := iter.Next(ctx)
	if err != nil || !ok || v != math.MaxInt64 {
		t.Fatalf("first Next: val=%d ok=%v err=%v", v, ok, err)
	}
	_, _, err = iter.Next(ctx)
	if err == nil {
		t.Fatal("expected overflow error")
	}
	if !apperrors.IsOverflow(err) {
		t.Errorf("expected NUMERIC_OVERFLOW, got %v", err)
	}
}

func TestTake_Zero(t *testing.T) {
	got, err := Take(context.Background(), Naturals(2), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestTake_Negative(t *testing.T) {
	_, err := Take(context.Background(), Naturals(2), -1)
	if err == nil {
		t.Fatal("expected error for negative take count")
	}
	if !apperrors.IsInvalidArgument(err) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestTake_ShortSequence(t *testing.T) {
	got, err := Take(context.Background(), FromSlice([]int64{1, 2}), 10)
	if err != nil {
		t.Fatal(err)
	}
	if !int64SliceEqual(got, []int64{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestTake_NoOverfetch(t *testing.T) {
	var pulls atomic.Int64
	counted := Generate(func(i int64) (int64, error) {
		pulls.Add(1)
		return i, nil
	})
	got, err := Take(context.Background(), counted, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 values, got %d", len(got))
	}
	if pulls.Load() != 5 {
		t.Errorf("take(5) pulled %d raw elements, want exactly 5", pulls.Load())
	}
}

func TestDrop_LazyComposition(t *testing.T) {
	var pulls atomic.Int64
	counted := Generate(func(i int64) (int64, error) {
		pulls.Add(1)
		return i, nil
	})

	dropped := Drop(counted, 3)
	if pulls.Load() != 0 {
		t.Fatalf("composition consumed %d elements, want 0", pulls.Load())
	}

	ctx := context.Background()
	iter := dropped.Iter(ctx)
	defer iter.Close()
	v, ok, err := iter.Next(ctx)
	if err != nil || !ok || v != 3 {
		t.Fatalf("first Next after drop(3): val=%d ok=%v err=%v", v, ok, err)
	}
	if pulls.Load() != 4 {
		t.Errorf("first pull consumed %d raw elements, want 4", pulls.Load())
	}
}

func TestDrop_ZeroIsIdentity(t *testing.T) {
	s := Naturals(2)
	if Drop(s, 0) != s {
		t.Error("drop(0) should return the same sequence")
	}
}

func TestDrop_PastEnd(t *testing.T) {
	got, err := Collect(context.Background(), Drop(FromSlice([]int64{1, 2}), 5))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestFilter(t *testing.T) {
	evens := Filter(Naturals(1), func(n int64) bool { return n%2 == 0 })
	got, err := Take(context.Background(), evens, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{2, 4, 6}
	if !int64SliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilter_LazyEvaluationOrder(t *testing.T) {
	var seen []int64
	s := Filter(FromSlice([]int64{1, 2, 3, 4}), func(n int64) bool {
		seen = append(seen, n)
		return n%2 == 0
	})
	if len(seen) != 0 {
		t.Fatalf("composition evaluated predicate %d times, want 0", len(seen))
	}
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !int64SliceEqual(got, []int64{2, 4}) {
		t.Errorf("got %v, want [2 4]", got)
	}
	if !int64SliceEqual(seen, []int64{1, 2, 3, 4}) {
		t.Errorf("predicate saw %v, want every candidate in upstream order", seen)
	}
}

func TestFilter_SnapshotCapture(t *testing.T) {
	// Each loop iteration declares its own divisor; the predicates keep the
	// per-iteration values rather than all sharing the final one.
	s := Naturals(2)
	for _, d := range []int64{2, 3, 5} {
		divisor := d
		s = Filter(s, func(n int64) bool { return n == divisor || n%divisor != 0 })
	}
	got, err := Take(context.Background(), s, 6)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{2, 3, 5, 7, 11, 13}
	if !int64SliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMap(t *testing.T) {
	doubled := Map(FromSlice([]int64{1, 2, 3}), func(_ context.Context, n int64) (int64, error) {
		return n * 2, nil
	})
	got, err := Collect(context.Background(), doubled)
	if err != nil {
		t.Fatal(err)
	}
	if !int64SliceEqual(got, []int64{2, 4, 6}) {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}

func TestTap(t *testing.T) {
	var tapped []int64
	s := Tap(FromSlice([]int64{1, 2, 3}), func(_ context.Context, n int64) error {
		tapped = append(tapped, n)
		return nil
	})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !int64SliceEqual(got, []int64{1, 2, 3}) {
		t.Errorf("values should pass through unchanged, got %v", got)
	}
	if !int64SliceEqual(tapped, []int64{1, 2, 3}) {
		t.Errorf("tap should see all values, got %v", tapped)
	}
}

func TestHead_ColdPeek(t *testing.T) {
	ctx := context.Background()
	s := Naturals(2)

	v, ok, err := Head(ctx, s)
	if err != nil || !ok || v != 2 {
		t.Fatalf("Head: val=%d ok=%v err=%v", v, ok, err)
	}
	// A cold sequence restarts on the next consumption.
	v, ok, err = Head(ctx, s)
	if err != nil || !ok || v != 2 {
		t.Errorf("second Head: val=%d ok=%v err=%v, want 2 again", v, ok, err)
	}
}

func TestIterator_NotRestartable(t *testing.T) {
	ctx := context.Background()
	iter := Naturals(2).Iter(ctx)
	defer iter.Close()

	first, _, _ := iter.Next(ctx)
	second, _, _ := iter.Next(ctx)
	if first != 2 || second != 3 {
		t.Errorf("live iterator replayed: got %d then %d", first, second)
	}
}

func TestColdSequence_Reconsumable(t *testing.T) {
	ctx := context.Background()
	s := Filter(Naturals(2), func(n int64) bool { return n%2 == 0 })

	a, err := Take(ctx, s, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Take(ctx, s, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !int64SliceEqual(a, b) {
		t.Errorf("cold sequence should replay identically: %v vs %v", a, b)
	}
}

func TestForEach(t *testing.T) {
	var sum int64
	err := ForEach(context.Background(), FromSlice([]int64{1, 2, 3}), func(_ context.Context, n int64) error {
		sum += n
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
}

// --- helpers ---

func int64SliceEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
