package hashset

import "iter"

// group is an outer-table entry: an indexing key and the inner set of
// elements filed under it.
type group[K comparable, T any] struct {
	key   K
	inner *DualSet[T]
}

// Index is a two-level index: an outer Set keyed by an indexing key whose
// values are DualSets, created lazily on first insert under a new key and
// removed from the outer table as soon as they become empty (cascade-empty
// cleanup). An empty inner set never survives a removal; that is a
// correctness requirement, not an optimization, since stale groups would
// leak memory and corrupt outer iteration.
//
// All operations take caller-precomputed hash codes, so a coordinating
// caller hashes each component exactly once across several indexes.
type Index[K comparable, T any] struct {
	outer    *Set[*group[K, T]]
	newInner func() *DualSet[T]
	size     int
}

// IndexConfig parameterizes an Index.
type IndexConfig[K comparable, T any] struct {
	// KeyHash maps an indexing key to its hash code. Required; it must
	// agree with the codes callers pass to the keyed operations.
	KeyHash func(K) uint32

	// NewInner creates an empty inner set for a fresh key. Required.
	NewInner func() *DualSet[T]

	// InitialCapacity is a probe-table size hint for the outer table.
	InitialCapacity int
}

// NewIndex creates an Index from cfg. It panics if KeyHash or NewInner is nil.
func NewIndex[K comparable, T any](cfg IndexConfig[K, T]) *Index[K, T] {
	if cfg.KeyHash == nil {
		panic("hashset: IndexConfig.KeyHash is required")
	}
	if cfg.NewInner == nil {
		panic("hashset: IndexConfig.NewInner is required")
	}
	keyHash := cfg.KeyHash
	return &Index[K, T]{
		newInner: cfg.NewInner,
		outer: New(Config[*group[K, T]]{
			Hash:            func(g *group[K, T]) uint32 { return keyHash(g.key) },
			Equal:           func(a, b *group[K, T]) bool { return a.key == b.key },
			InitialCapacity: cfg.InitialCapacity,
		}),
	}
}

// Len returns the total number of elements across all keys.
func (ix *Index[K, T]) Len() int { return ix.size }

// IsEmpty reports whether the index holds no elements.
func (ix *Index[K, T]) IsEmpty() bool { return ix.size == 0 }

// Keys returns the number of distinct indexing keys.
func (ix *Index[K, T]) Keys() int { return ix.outer.Len() }

// Clear discards everything, inner sets included.
func (ix *Index[K, T]) Clear() {
	ix.outer.Clear()
	ix.size = 0
}

// Get returns the inner set under k, if the key is present. The result is a
// live view; mutate it only through the Index.
func (ix *Index[K, T]) Get(k K, keyHash uint32) (*DualSet[T], bool) {
	g, ok := ix.outer.Find(keyHash, func(g *group[K, T]) bool { return g.key == k })
	if !ok {
		return nil, false
	}
	return g.inner, true
}

// GetOrCreate returns the inner set under k, creating and inserting an empty
// one if the key is new. A caller that then leaves it empty has violated the
// cascade invariant; prefer Add/AddUnchecked.
func (ix *Index[K, T]) GetOrCreate(k K, keyHash uint32) *DualSet[T] {
	g := ix.outer.GetOrCreate(keyHash,
		func(g *group[K, T]) bool { return g.key == k },
		func() *group[K, T] { return &group[K, T]{key: k, inner: ix.newInner()} },
	)
	return g.inner
}

// Add files v under k, checking for duplicates. hashA and hashB are v's two
// component hash codes for the inner dual placement.
func (ix *Index[K, T]) Add(k K, keyHash uint32, v T, hashA, hashB uint32) bool {
	if !ix.GetOrCreate(k, keyHash).TryAdd(v, hashA, hashB) {
		return false
	}
	ix.size++
	return true
}

// AddUnchecked files v under k without a duplicate scan. Same precondition
// as Set.AddUnchecked, applied to the inner set under k.
func (ix *Index[K, T]) AddUnchecked(k K, keyHash uint32, v T, hashA, hashB uint32) {
	ix.GetOrCreate(k, keyHash).AddUnchecked(v, hashA, hashB)
	ix.size++
}

// Remove unfiles v from under k. When the inner set becomes empty the key is
// removed from the outer table in the same call, so one logical removal is
// atomic from the caller's perspective.
func (ix *Index[K, T]) Remove(k K, keyHash uint32, v T, hashA, hashB uint32) bool {
	g, ok := ix.outer.Find(keyHash, func(g *group[K, T]) bool { return g.key == k })
	if !ok {
		return false
	}
	if !g.inner.TryRemove(v, hashA, hashB) {
		return false
	}
	ix.size--
	ix.dropIfEmpty(g, keyHash)
	return true
}

// RemoveUnchecked unfiles v from under k. Precondition: v is filed under k.
func (ix *Index[K, T]) RemoveUnchecked(k K, keyHash uint32, v T, hashA, hashB uint32) {
	g, ok := ix.outer.Find(keyHash, func(g *group[K, T]) bool { return g.key == k })
	if !ok {
		return
	}
	g.inner.RemoveUnchecked(v, hashA, hashB)
	ix.size--
	ix.dropIfEmpty(g, keyHash)
}

// dropIfEmpty runs the conditional outer removal of the cascade protocol:
// compute on the outer table, keeping the group only while non-empty.
func (ix *Index[K, T]) dropIfEmpty(g *group[K, T], keyHash uint32) {
	ix.outer.ComputeHashed(g, keyHash, func(cur *group[K, T], ok bool) (*group[K, T], bool) {
		return cur, ok && !cur.inner.IsEmpty()
	})
}

// All returns a range-over-func view over (key, inner set) pairs. Panics
// like Set.All on concurrent modification.
func (ix *Index[K, T]) All() iter.Seq2[K, *DualSet[T]] {
	return func(yield func(K, *DualSet[T]) bool) {
		for g := range ix.outer.All() {
			if !yield(g.key, g.inner) {
				return
			}
		}
	}
}
