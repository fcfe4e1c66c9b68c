package hashset

import "iter"

// Iterator walks all elements of a Set in surrogate-index order, skipping
// recycled arena slots. It snapshots the element count at creation; any
// structural mutation observed before the traversal finishes surfaces as
// ErrConcurrentModification from Err, never as wrong results.
type Iterator[T any] struct {
	set       *Set[T]
	pos       int32
	remaining int
	snapshot  int
	cur       T
	err       error
}

// Iterator returns a fresh traversal over the set.
func (s *Set[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		set:       s,
		pos:       -1,
		remaining: s.count,
		snapshot:  s.count,
	}
}

// Next advances to the next element. It returns false when the traversal is
// exhausted or has failed; distinguish via Err.
func (it *Iterator[T]) Next() bool {
	if it.err != nil || it.remaining == 0 {
		return false
	}
	if it.set.count != it.snapshot {
		it.err = ErrConcurrentModification
		return false
	}
	for {
		it.pos++
		if it.pos >= it.set.high {
			// remaining said there was more; the set mutated under us
			// without a net count change we could observe.
			it.err = ErrConcurrentModification
			return false
		}
		if it.set.live.test(it.pos) {
			it.cur = it.set.entries[it.pos]
			it.remaining--
			return true
		}
	}
}

// Value returns the element Next advanced to.
func (it *Iterator[T]) Value() T { return it.cur }

// Remaining returns the exact number of elements not yet yielded.
func (it *Iterator[T]) Remaining() int { return it.remaining }

// Err returns ErrConcurrentModification if the traversal died mid-flight,
// nil after clean exhaustion.
func (it *Iterator[T]) Err() error { return it.err }

// All returns a range-over-func view of the set. It panics with
// ErrConcurrentModification if the set is structurally mutated during the
// range; use Iterator directly to handle that as an error.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iterator()
		for it.Next() {
			if !yield(it.cur) {
				return
			}
		}
		if it.err != nil {
			panic(it.err)
		}
	}
}

// Handles returns a range-over-func view yielding each element with its
// surrogate handle. Handles are stable until removal and resolvable via At.
// Panics like All on concurrent modification.
func (s *Set[T]) Handles() iter.Seq2[uint32, T] {
	return func(yield func(uint32, T) bool) {
		it := s.Iterator()
		for it.Next() {
			if !yield(uint32(it.pos), it.cur) {
				return
			}
		}
		if it.err != nil {
			panic(it.err)
		}
	}
}
