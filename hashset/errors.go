package hashset

import "errors"

// ErrConcurrentModification is reported by a traversal that observed a
// structural change (add or remove) after its creation. The traversal is
// dead; the underlying table is intact.
var ErrConcurrentModification = errors.New("hashset: concurrent modification during traversal")
