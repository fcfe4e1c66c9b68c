package rdf

// Triple is a subject/predicate/object statement. The zero value is invalid.
//
// Triples are plain values; the indexes store them as-is and never
// canonicalize them.
type Triple struct {
	Subject   Node
	Predicate Node
	Object    Node
}

// NewTriple assembles a triple from its three nodes.
func NewTriple(s, p, o Node) Triple {
	return Triple{Subject: s, Predicate: p, Object: o}
}

// IsZero reports whether any position holds the invalid zero node.
func (t Triple) IsZero() bool {
	return t.Subject.IsZero() || t.Predicate.IsZero() || t.Object.IsZero()
}

// Equal reports positional node equality.
func (t Triple) Equal(o Triple) bool {
	return t.Subject.Equal(o.Subject) &&
		t.Predicate.Equal(o.Predicate) &&
		t.Object.Equal(o.Object)
}

// Hash returns the triple's combined hash code, derived from the three node
// hashes via CombineTriple. It is cheap: node hashes are cached.
func (t Triple) Hash() uint32 {
	return CombineTriple(t.Subject.Hash(), t.Predicate.Hash(), t.Object.Hash())
}

// String returns a debug representation.
func (t Triple) String() string {
	return t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String() + " ."
}

// CombineTriple derives a single placement hash from three per-position node
// hashes. The formula is (h1 >> 1) ^ h2 ^ (h3 << 1) with an ARITHMETIC right
// shift (the hashes are treated as signed 32-bit values). Derived structures
// such as the dual-hash sets depend on this exact bit pattern; do not change
// it.
func CombineTriple(h1, h2, h3 uint32) uint32 {
	return uint32(int32(h1)>>1) ^ h2 ^ (h3 << 1)
}

// CombinePair derives a placement hash from two component hashes. It is
// CombineTriple with the middle term dropped, so dual-hash sets and
// triple-keyed structures share the same mixing discipline.
func CombinePair(a, b uint32) uint32 {
	return uint32(int32(a)>>1) ^ (b << 1)
}
