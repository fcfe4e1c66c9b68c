package hashset

import "iter"

// dualEntry carries an element together with its two component hash codes,
// so component-restricted scans never recompute them.
type dualEntry[T any] struct {
	value        T
	hashA, hashB uint32
}

// DualSet is the dual-key variant of Set: elements are placed by a combined
// hash of two independently hashed components (CombinePair), and the per-
// component codes are stored with each entry.
//
// Beyond the usual set operations it offers component-restricted iteration:
// all elements whose first component hashes to a given code, optionally also
// restricted by the second. The combined placement hash cannot isolate such
// elements by probing, so these scans walk the ENTIRE backing array — an
// O(capacity) cost accepted for a rarely needed access pattern. Scans match
// by component hash code only; callers needing exact identity must filter
// the yielded elements themselves.
type DualSet[T any] struct {
	set *Set[dualEntry[T]]
}

// DualConfig parameterizes a DualSet. Equal is required; hashes are always
// supplied per call by the coordinating caller.
type DualConfig[T any] struct {
	// Equal reports element identity.
	Equal func(T, T) bool

	// InitialCapacity is a probe-table size hint, as in Config.
	InitialCapacity int
}

// NewDual creates a DualSet from cfg. It panics if Equal is nil.
func NewDual[T any](cfg DualConfig[T]) *DualSet[T] {
	if cfg.Equal == nil {
		panic("hashset: DualConfig.Equal is required")
	}
	equal := cfg.Equal
	return &DualSet[T]{
		set: New(Config[dualEntry[T]]{
			Hash: func(e dualEntry[T]) uint32 {
				return CombinePair(e.hashA, e.hashB)
			},
			Equal: func(a, b dualEntry[T]) bool {
				return a.hashA == b.hashA && a.hashB == b.hashB && equal(a.value, b.value)
			},
			InitialCapacity: cfg.InitialCapacity,
		}),
	}
}

// Len returns the number of elements.
func (d *DualSet[T]) Len() int { return d.set.Len() }

// IsEmpty reports whether the set holds no elements.
func (d *DualSet[T]) IsEmpty() bool { return d.set.IsEmpty() }

// Capacity returns the current probe-table size.
func (d *DualSet[T]) Capacity() int { return d.set.Capacity() }

// Clear discards all elements and growth history.
func (d *DualSet[T]) Clear() { d.set.Clear() }

// TryAdd inserts v with its two component hash codes if absent.
func (d *DualSet[T]) TryAdd(v T, hashA, hashB uint32) bool {
	e := dualEntry[T]{value: v, hashA: hashA, hashB: hashB}
	return d.set.TryAddHashed(e, CombinePair(hashA, hashB))
}

// AddUnchecked inserts without a duplicate scan. Same precondition and
// consequences as Set.AddUnchecked.
func (d *DualSet[T]) AddUnchecked(v T, hashA, hashB uint32) {
	e := dualEntry[T]{value: v, hashA: hashA, hashB: hashB}
	d.set.AddUncheckedHashed(e, CombinePair(hashA, hashB))
}

// TryRemove removes v, if present.
func (d *DualSet[T]) TryRemove(v T, hashA, hashB uint32) bool {
	e := dualEntry[T]{value: v, hashA: hashA, hashB: hashB}
	return d.set.TryRemoveHashed(e, CombinePair(hashA, hashB))
}

// RemoveUnchecked removes v. Same precondition as Set.RemoveUnchecked.
func (d *DualSet[T]) RemoveUnchecked(v T, hashA, hashB uint32) {
	e := dualEntry[T]{value: v, hashA: hashA, hashB: hashB}
	d.set.RemoveUncheckedHashed(e, CombinePair(hashA, hashB))
}

// Contains reports whether v is present.
func (d *DualSet[T]) Contains(v T, hashA, hashB uint32) bool {
	e := dualEntry[T]{value: v, hashA: hashA, hashB: hashB}
	return d.set.ContainsHashed(e, CombinePair(hashA, hashB))
}

// All returns a range-over-func view of the elements. Panics like Set.All on
// concurrent modification.
func (d *DualSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range d.set.All() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// ScanA returns a traversal over every element whose first component hash
// code equals hashA, in surrogate-index order. O(capacity): see the type doc.
func (d *DualSet[T]) ScanA(hashA uint32) *Scan[T] {
	return &Scan[T]{
		set:      d.set,
		pos:      -1,
		snapshot: d.set.count,
		hashA:    hashA,
	}
}

// ScanAB is ScanA additionally restricted by the second component hash code.
func (d *DualSet[T]) ScanAB(hashA, hashB uint32) *Scan[T] {
	sc := d.ScanA(hashA)
	sc.matchB = true
	sc.hashB = hashB
	return sc
}

// Scan is a component-restricted linear traversal over a DualSet's backing
// array. Like Iterator it dies with ErrConcurrentModification on structural
// mutation; unlike Iterator it has no remaining count, since the number of
// matches is unknown up front.
type Scan[T any] struct {
	set          *Set[dualEntry[T]]
	pos          int32
	snapshot     int
	hashA, hashB uint32
	matchB       bool
	cur          T
	err          error
}

// Next advances to the next matching element.
func (sc *Scan[T]) Next() bool {
	if sc.err != nil {
		return false
	}
	for {
		if sc.set.count != sc.snapshot {
			sc.err = ErrConcurrentModification
			return false
		}
		sc.pos++
		if sc.pos >= sc.set.high {
			return false
		}
		if !sc.set.live.test(sc.pos) {
			continue
		}
		e := sc.set.entries[sc.pos]
		if e.hashA != sc.hashA {
			continue
		}
		if sc.matchB && e.hashB != sc.hashB {
			continue
		}
		sc.cur = e.value
		return true
	}
}

// Value returns the element Next advanced to.
func (sc *Scan[T]) Value() T { return sc.cur }

// Err returns ErrConcurrentModification if the scan died mid-flight.
func (sc *Scan[T]) Err() error { return sc.err }

// Seq returns a range-over-func view of the scan. Panics on concurrent
// modification, like Set.All.
func (sc *Scan[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for sc.Next() {
			if !yield(sc.cur) {
				return
			}
		}
		if sc.err != nil {
			panic(sc.err)
		}
	}
}
