package hashset

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minSplitRange is the smallest backing-array range a Cursor will split.
const minSplitRange = 10

// Cursor is a splittable traversal over a half-open range of the backing
// array. Unlike Iterator, its remaining count is an estimate: once a cursor
// has been split, dead slots make the true element count of each half
// unknowable without a scan, so estimates are upper bounds clamped by range
// length.
type Cursor[T any] struct {
	set      *Set[T]
	lo, hi   int32
	est      int
	split    bool
	snapshot int
}

// Cursor returns a traversal over the whole set, suitable for splitting.
func (s *Set[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{set: s, lo: 0, hi: s.high, est: s.count, snapshot: s.count}
}

// Split halves the cursor's range, returning a new cursor over the lower
// half and shrinking the receiver to the upper half. It returns nil when the
// range is too small to be worth splitting.
func (c *Cursor[T]) Split() *Cursor[T] {
	if c.hi-c.lo < 2*minSplitRange {
		return nil
	}
	mid := c.lo + (c.hi-c.lo)/2
	left := &Cursor[T]{set: c.set, lo: c.lo, hi: mid, split: true, snapshot: c.snapshot}
	c.lo = mid
	c.split = true
	left.est = min(c.est, int(left.hi-left.lo))
	c.est = min(c.est, int(c.hi-c.lo))
	return left
}

// Remaining returns the element-count estimate: exact before any split, an
// upper bound after.
func (c *Cursor[T]) Remaining() int { return c.est }

// Exact reports whether Remaining is an exact count.
func (c *Cursor[T]) Exact() bool { return !c.split }

// ForEach applies fn to every live element in the cursor's range, consuming
// the cursor. It stops early with fn's error, or with
// ErrConcurrentModification if the set is structurally mutated mid-range.
func (c *Cursor[T]) ForEach(fn func(T) error) error {
	for i := c.lo; i < c.hi; i++ {
		if c.set.count != c.snapshot {
			return ErrConcurrentModification
		}
		if !c.set.live.test(i) {
			continue
		}
		if err := fn(c.set.entries[i]); err != nil {
			return err
		}
	}
	c.lo = c.hi
	c.est = 0
	return nil
}

// ForEachParallel traverses the set with up to parallelism goroutines
// (GOMAXPROCS when <= 0), splitting the backing range into disjoint cursors.
// It is read-only and safe only with no concurrent writer; the first error
// from fn cancels the remaining work via ctx.
func (s *Set[T]) ForEachParallel(ctx context.Context, parallelism int, fn func(T) error) error {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	cursors := []*Cursor[T]{s.Cursor()}
	for len(cursors) < parallelism {
		widest := cursors[0]
		for _, c := range cursors[1:] {
			if c.hi-c.lo > widest.hi-widest.lo {
				widest = c
			}
		}
		left := widest.Split()
		if left == nil {
			break
		}
		cursors = append(cursors, left)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, c := range cursors {
		g.Go(func() error {
			return c.ForEach(func(v T) error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return fn(v)
			})
		})
	}
	return g.Wait()
}
