package hashset

// Set is an open-addressing hash set with surrogate-indexed entry storage.
//
// The probe table holds encoded surrogate indices (the bitwise complement of
// the index, so that zero always means "empty slot"). Entries live in a dense
// arena addressed by those indices: values in entries, their hash codes in
// hashes. New entries take the bump pointer; removed entry slots are recycled
// through an intrusive free list threaded through the hashes array.
//
// Probing is backward linear: from the ideal slot hash&mask, decrementing
// with wrap-around until a match or an empty slot. Removal compacts the probe
// run in place (backward-shift deletion); there are no tombstones and the
// table never shrinks short of Clear.
type Set[T any] struct {
	hash  func(T) uint32
	equal func(T, T) bool

	// positions is the probe table. 0 = empty, otherwise ^surrogateIndex.
	positions []int32
	mask      uint32

	// Entry arena. hashes doubles as free-list storage: a recycled slot
	// holds the (bit-cast) index of the next free slot, terminated by -1.
	entries  []T
	hashes   []uint32
	live     occupancy
	high     int32 // bump pointer: first never-used surrogate index
	freeHead int32 // head of the recycled-slot list, -1 if none
	removed  int   // recycled slots currently on the free list

	count   int
	initCap int
}

// New creates a Set from cfg. It panics if Hash or Equal is nil; those are
// programmer errors, not runtime conditions.
func New[T any](cfg Config[T]) *Set[T] {
	if cfg.Hash == nil {
		panic("hashset: Config.Hash is required")
	}
	if cfg.Equal == nil {
		panic("hashset: Config.Equal is required")
	}
	s := &Set[T]{
		hash:    cfg.Hash,
		equal:   cfg.Equal,
		initCap: capacityFor(cfg.InitialCapacity),
	}
	s.reset()
	return s
}

func (s *Set[T]) reset() {
	p := s.initCap
	s.positions = make([]int32, p)
	s.mask = uint32(p - 1)
	ecap := p / 2
	if ecap < 1 {
		ecap = 1
	}
	s.entries = make([]T, ecap)
	s.hashes = make([]uint32, ecap)
	s.live = newOccupancy(ecap)
	s.high = 0
	s.freeHead = -1
	s.removed = 0
	s.count = 0
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return s.count }

// IsEmpty reports whether the set holds no elements.
func (s *Set[T]) IsEmpty() bool { return s.count == 0 }

// Capacity returns the current probe-table size. It is always a power of two
// and, until the MaxCapacity ceiling, at least twice Len.
func (s *Set[T]) Capacity() int { return len(s.positions) }

// Clear discards all elements and growth history, returning the set to its
// initial capacity.
func (s *Set[T]) Clear() { s.reset() }

// TryAdd inserts v if no equal element is present. It returns false, without
// mutating, when a duplicate exists.
func (s *Set[T]) TryAdd(v T) bool { return s.TryAddHashed(v, s.hash(v)) }

// TryAddHashed is TryAdd with a caller-precomputed hash code. The code must
// equal Hash(v); this is how coordinating callers hash once across several
// indexes.
func (s *Set[T]) TryAddHashed(v T, h uint32) bool {
	s.reserve()
	slot := h & s.mask
	for {
		ref := s.positions[slot]
		if ref == 0 {
			s.insert(slot, v, h)
			return true
		}
		if idx := ^ref; s.hashes[idx] == h && s.equal(s.entries[idx], v) {
			return false
		}
		slot = (slot - 1) & s.mask
	}
}

// AddUnchecked inserts v without scanning for duplicates.
//
// Precondition: no element equal to v is present. Violating it silently
// creates an unreachable duplicate that corrupts Len and traversal counts; it
// is not detected. Use TryAdd unless another index over the same entries has
// already established novelty.
func (s *Set[T]) AddUnchecked(v T) { s.AddUncheckedHashed(v, s.hash(v)) }

// AddUncheckedHashed is AddUnchecked with a caller-precomputed hash code.
func (s *Set[T]) AddUncheckedHashed(v T, h uint32) {
	s.reserve()
	slot := h & s.mask
	for s.positions[slot] != 0 {
		slot = (slot - 1) & s.mask
	}
	s.insert(slot, v, h)
}

// TryRemove removes the element equal to v, if present.
func (s *Set[T]) TryRemove(v T) bool { return s.TryRemoveHashed(v, s.hash(v)) }

// TryRemoveHashed is TryRemove with a caller-precomputed hash code.
func (s *Set[T]) TryRemoveHashed(v T, h uint32) bool {
	slot, idx, ok := s.findSlot(v, h)
	if !ok {
		return false
	}
	s.removeAt(slot, idx)
	return true
}

// RemoveUnchecked removes the element equal to v.
//
// Precondition: the element is present. The call reports nothing; if the
// precondition is violated the set is left unchanged but the caller's size
// bookkeeping is now wrong, which is not detected.
func (s *Set[T]) RemoveUnchecked(v T) { s.RemoveUncheckedHashed(v, s.hash(v)) }

// RemoveUncheckedHashed is RemoveUnchecked with a caller-precomputed hash code.
func (s *Set[T]) RemoveUncheckedHashed(v T, h uint32) {
	if slot, idx, ok := s.findSlot(v, h); ok {
		s.removeAt(slot, idx)
	}
}

// Contains reports whether an element equal to v is present.
func (s *Set[T]) Contains(v T) bool { return s.ContainsHashed(v, s.hash(v)) }

// ContainsHashed is Contains with a caller-precomputed hash code.
func (s *Set[T]) ContainsHashed(v T, h uint32) bool {
	_, _, ok := s.findSlot(v, h)
	return ok
}

// GetIfPresent returns the stored element equal to v. The stored element may
// differ from v in fields the Equal function ignores.
func (s *Set[T]) GetIfPresent(v T) (T, bool) { return s.GetIfPresentHashed(v, s.hash(v)) }

// GetIfPresentHashed is GetIfPresent with a caller-precomputed hash code.
func (s *Set[T]) GetIfPresentHashed(v T, h uint32) (T, bool) {
	if _, idx, ok := s.findSlot(v, h); ok {
		return s.entries[idx], true
	}
	var zero T
	return zero, false
}

// Find returns the stored element with hash code h accepted by match. It is
// the lookup primitive for callers that identify elements by something
// cheaper than a fully built probe value.
func (s *Set[T]) Find(h uint32, match func(T) bool) (T, bool) {
	slot := h & s.mask
	for {
		ref := s.positions[slot]
		if ref == 0 {
			var zero T
			return zero, false
		}
		if idx := ^ref; s.hashes[idx] == h && match(s.entries[idx]) {
			return s.entries[idx], true
		}
		slot = (slot - 1) & s.mask
	}
}

// GetOrCreate returns the stored element with hash code h accepted by match,
// materializing it via create and inserting it first if absent. create's
// result must hash to h and be accepted by match.
func (s *Set[T]) GetOrCreate(h uint32, match func(T) bool, create func() T) T {
	if v, ok := s.Find(h, match); ok {
		return v
	}
	v := create()
	s.reserve()
	s.insert(s.firstEmpty(h), v, h)
	return v
}

// Compute applies fn to the stored element equal to v, or to the zero value
// with ok=false when absent. fn returns the replacement element and whether
// to keep it: keep=false removes (or leaves absent), keep=true stores the
// returned element. A replacement must remain equal to v under Equal and
// hash to the same code, since the probe slot is not touched.
//
// Compute returns the element now stored and whether one is present. This
// single primitive implements both lazy creation and remove-when-empty for
// nested indexes.
func (s *Set[T]) Compute(v T, fn func(cur T, ok bool) (T, bool)) (T, bool) {
	return s.ComputeHashed(v, s.hash(v), fn)
}

// ComputeHashed is Compute with a caller-precomputed hash code.
func (s *Set[T]) ComputeHashed(v T, h uint32, fn func(cur T, ok bool) (T, bool)) (T, bool) {
	var zero T
	if slot, idx, ok := s.findSlot(v, h); ok {
		next, keep := fn(s.entries[idx], true)
		if !keep {
			s.removeAt(slot, idx)
			return zero, false
		}
		s.entries[idx] = next
		return next, true
	}
	next, keep := fn(zero, false)
	if !keep {
		return zero, false
	}
	s.reserve()
	s.insert(s.firstEmpty(h), next, h)
	return next, true
}

// At resolves a surrogate handle (as yielded by Handles or HandleOf) to its
// element. Handles are stable until the element is removed; a removed
// handle's slot may be recycled for a later insert.
func (s *Set[T]) At(handle uint32) (T, bool) {
	idx := int32(handle)
	if idx < 0 || idx >= s.high || !s.live.test(idx) {
		var zero T
		return zero, false
	}
	return s.entries[idx], true
}

// HandleOf returns the surrogate handle of the element equal to v.
func (s *Set[T]) HandleOf(v T) (uint32, bool) { return s.HandleOfHashed(v, s.hash(v)) }

// HandleOfHashed is HandleOf with a caller-precomputed hash code.
func (s *Set[T]) HandleOfHashed(v T, h uint32) (uint32, bool) {
	if _, idx, ok := s.findSlot(v, h); ok {
		return uint32(idx), true
	}
	return 0, false
}

// findSlot locates the probe slot and surrogate index of the element equal
// to v, scanning backward from the ideal slot until a match or empty slot.
func (s *Set[T]) findSlot(v T, h uint32) (uint32, int32, bool) {
	slot := h & s.mask
	for {
		ref := s.positions[slot]
		if ref == 0 {
			return 0, 0, false
		}
		if idx := ^ref; s.hashes[idx] == h && s.equal(s.entries[idx], v) {
			return slot, idx, true
		}
		slot = (slot - 1) & s.mask
	}
}

// firstEmpty returns the first empty slot on the backward run from h's ideal
// slot. Callers must have reserved capacity already.
func (s *Set[T]) firstEmpty(h uint32) uint32 {
	slot := h & s.mask
	for s.positions[slot] != 0 {
		slot = (slot - 1) & s.mask
	}
	return slot
}

// insert writes v into an empty probe slot, allocating a surrogate index
// from the free list or the bump pointer.
func (s *Set[T]) insert(slot uint32, v T, h uint32) {
	idx := s.alloc()
	s.entries[idx] = v
	s.hashes[idx] = h
	s.live.set(idx)
	s.positions[slot] = ^idx
	s.count++
}

func (s *Set[T]) alloc() int32 {
	if s.freeHead >= 0 {
		idx := s.freeHead
		s.freeHead = int32(s.hashes[idx])
		s.removed--
		return idx
	}
	if int(s.high) == len(s.entries) {
		s.growEntries()
	}
	idx := s.high
	s.high++
	return idx
}

// removeAt frees the entry at idx, vacates its probe slot and restores the
// contiguous-run invariant.
func (s *Set[T]) removeAt(slot uint32, idx int32) {
	var zero T
	s.entries[idx] = zero // release the reference
	s.hashes[idx] = uint32(s.freeHead)
	s.freeHead = idx
	s.live.unset(idx)
	s.removed++
	s.count--
	s.positions[slot] = 0
	s.shiftBackward(slot)
}

// reserve grows the probe table ahead of one insertion so that the load
// factor stays at or below 0.5. At MaxCapacity it stops growing; lookups
// degrade to longer probe runs rather than failing.
func (s *Set[T]) reserve() {
	for len(s.positions) < MaxCapacity && (s.count+1)*2 > len(s.positions) {
		s.rehash(len(s.positions) * 2)
	}
}

// rehash rebuilds the probe table at newCap slots, reusing stored hash codes.
// Entry storage and surrogate indices are untouched.
func (s *Set[T]) rehash(newCap int) {
	s.positions = make([]int32, newCap)
	s.mask = uint32(newCap - 1)
	for idx := int32(0); idx < s.high; idx++ {
		if !s.live.test(idx) {
			continue
		}
		slot := s.hashes[idx] & s.mask
		for s.positions[slot] != 0 {
			slot = (slot - 1) & s.mask
		}
		s.positions[slot] = ^idx
	}
}

func (s *Set[T]) growEntries() {
	newCap := len(s.entries) * 2
	entries := make([]T, newCap)
	copy(entries, s.entries)
	s.entries = entries
	hashes := make([]uint32, newCap)
	copy(hashes, s.hashes)
	s.hashes = hashes
	s.live.grow(newCap)
}
