// Package hashset implements the open-addressing hash tables underlying the
// tripleidx indexes.
//
// All variants share one engine: a power-of-two probe table of encoded
// surrogate indices, a dense entry arena addressed by those indices, and
// backward linear probing with backward-shift deletion instead of tombstones.
// Hash codes are stored alongside entries and never recomputed from values.
//
// # Checked vs unchecked mutation
//
// Every mutation exists in two forms. The checked form (TryAdd, TryRemove)
// verifies duplicates/presence and reports the outcome; it never corrupts the
// table regardless of input. The unchecked form (AddUnchecked,
// RemoveUnchecked) skips that verification for hot paths where a coordinating
// caller has already performed it against another index over the same
// entries. Violating an unchecked precondition (duplicate add, removing an
// absent entry) is undefined behavior by contract: it is not detected and not
// reported, though it never causes memory unsafety.
//
// # Concurrency
//
// Single-writer only; there is no internal locking. Traversals snapshot the
// element count at creation and fail with ErrConcurrentModification when a
// structural change is observed mid-flight. The one sanctioned parallel path
// is read-only split traversal (Cursor.Split, Set.ForEachParallel) with no
// concurrent writer.
package hashset
