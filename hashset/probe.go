package hashset

// shiftBackward restores the probe invariant after positions[free] has been
// vacated: every entry must stay reachable from its ideal slot by a backward
// run containing no empty slot.
//
// The scan walks backward (in probe direction) from the vacated slot. An
// occupant at pos may fill the hole only if the hole still lies on the
// backward run from the occupant's ideal slot, i.e. the ideal slot is not
// strictly between the hole and pos along the probe direction. The nearest
// such occupant is relocated, its old slot becomes the new hole, and the
// scan continues from there. The first empty slot terminates the run: no
// entry beyond it can have probed across it.
//
// Distances are cyclic backward distances: dist(a, b) = (a - b) & mask is
// the number of probe steps from slot a down to slot b.
func (s *Set[T]) shiftBackward(free uint32) {
	pos := free
	for {
		pos = (pos - 1) & s.mask
		ref := s.positions[pos]
		if ref == 0 {
			return
		}
		ideal := s.hashes[^ref] & s.mask
		if (ideal-free)&s.mask < (ideal-pos)&s.mask {
			s.positions[free] = ref
			s.positions[pos] = 0
			free = pos
		}
	}
}
