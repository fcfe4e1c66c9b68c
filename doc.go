// Package tripleidx provides fast in-memory hash indexes for RDF triples.
//
// The core is a family of open-addressing hash tables (package hashset)
// tuned for triple-store churn: stored hash codes, backward linear probing
// with backward-shift deletion instead of tombstones, grow-only capacity,
// and paired checked/unchecked mutation entry points so coordinated indexes
// over the same triples verify duplicates exactly once.
//
// # Quick start
//
//	g := tripleidx.New()
//
//	alice := rdf.NewIRI("http://example.org/alice")
//	knows := rdf.NewIRI("http://xmlns.com/foaf/0.1/knows")
//	bob := rdf.NewIRI("http://example.org/bob")
//
//	g.Add(rdf.NewTriple(alice, knows, bob))
//
//	for t := range g.WithSubject(alice) {
//	    fmt.Println(t)
//	}
//
// Graph maintains a primary triple set plus subject, predicate, and object
// indexes, each a two-level structure grouping triples by one node and
// placing them by a combined hash of the other two. Insertion hashes each
// node once: the primary set's checked add establishes novelty, then the
// unchecked fast paths populate the secondaries.
//
// # Selections
//
// Per-component query results can be materialized as Selections (roaring
// bitmaps over stable triple handles) and intersected, unioned, or subtracted
// without touching the indexes again:
//
//	ab := g.SelectSubject(alice).And(g.SelectObject(bob))
//
// # Concurrency
//
// All mutation is single-writer with no internal locking. Read-only parallel
// traversal over a quiescent graph is supported through the hashset cursors.
package tripleidx
