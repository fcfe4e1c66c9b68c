package hashset

// occupancy is a word-packed bitset tracking which surrogate indices hold a
// live entry. Recycled arena slots keep stale bytes, so traversal and handle
// lookups consult this set instead of a sentinel value.
type occupancy struct {
	words []uint64
}

func newOccupancy(capacity int) occupancy {
	return occupancy{words: make([]uint64, (capacity+63)/64)}
}

func (o *occupancy) set(i int32) {
	o.words[i>>6] |= 1 << (uint32(i) & 63)
}

func (o *occupancy) unset(i int32) {
	o.words[i>>6] &^= 1 << (uint32(i) & 63)
}

func (o *occupancy) test(i int32) bool {
	return o.words[i>>6]&(1<<(uint32(i)&63)) != 0
}

// grow ensures capacity bits are addressable.
func (o *occupancy) grow(capacity int) {
	need := (capacity + 63) / 64
	if need <= len(o.words) {
		return
	}
	words := make([]uint64, need)
	copy(words, o.words)
	o.words = words
}
