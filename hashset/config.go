package hashset

import "math/bits"

const (
	// MinCapacity is the smallest probe-table size. Capacity hints are
	// rounded up to a power of two and never below this.
	MinCapacity = 2

	// DefaultCapacity is the probe-table size used when no hint is given.
	DefaultCapacity = 16

	// MaxCapacity is the hard ceiling on probe-table size. Beyond it the
	// table stops growing and probing degrades gracefully instead of
	// failing; index arithmetic stays well inside int32 range.
	MaxCapacity = 1 << 30
)

// Config parameterizes a Set. Hash and Equal are required; the engine never
// defines identity for its element type itself.
type Config[T any] struct {
	// Hash maps an element to its 32-bit hash code. It must be stable and
	// must agree with Equal: equal elements hash identically.
	Hash func(T) uint32

	// Equal reports element identity.
	Equal func(T, T) bool

	// InitialCapacity is a probe-table size hint. Zero means
	// DefaultCapacity. Values are clamped to [MinCapacity, MaxCapacity]
	// and rounded up to a power of two.
	InitialCapacity int
}

// CombinePair derives a single placement hash from two independently hashed
// components, using an ARITHMETIC right shift on the first (the hashes are
// treated as signed 32-bit values): (a >> 1) ^ (b << 1). Dual-hash sets and
// the triple hash formula share this mixing discipline; derived structures
// depend on the exact bit pattern.
func CombinePair(a, b uint32) uint32 {
	return uint32(int32(a)>>1) ^ (b << 1)
}

// capacityFor rounds hint up to a valid probe-table size.
func capacityFor(hint int) int {
	if hint <= 0 {
		return DefaultCapacity
	}
	if hint < MinCapacity {
		hint = MinCapacity
	}
	if hint > MaxCapacity {
		return MaxCapacity
	}
	return 1 << bits.Len(uint(hint-1))
}
