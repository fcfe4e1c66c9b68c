package tripleidx

import (
	"iter"
	"log/slog"

	"github.com/hupe1980/tripleidx/hashset"
	"github.com/hupe1980/tripleidx/rdf"
)

// Graph is an in-memory triple store built from coordinated hashset indexes:
// a primary set of all triples plus one two-level index per triple position.
//
// The primary set is the source of truth for membership. Each secondary
// groups triples by one node and places them inside the group by the
// combined hash of the other two nodes, enabling per-component lookup. On
// insert the primary's checked add establishes novelty and the secondaries
// take the unchecked fast paths; all four structures hash each node exactly
// once per call.
//
// Mutation is single-writer; see the hashset package for the traversal and
// parallelism rules.
type Graph struct {
	logger *Logger

	primary *hashset.Set[rdf.Triple]

	// Inner dual components, in ScanA-first order:
	// bySubject groups by S, places by (P, O).
	// byPredicate groups by P, places by (S, O).
	// byObject groups by O, places by (S, P).
	bySubject   *hashset.Index[rdf.Node, rdf.Triple]
	byPredicate *hashset.Index[rdf.Node, rdf.Triple]
	byObject    *hashset.Index[rdf.Node, rdf.Triple]
}

// New creates an empty graph.
func New(optFns ...Option) *Graph {
	opts := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	tripleEqual := func(a, b rdf.Triple) bool { return a.Equal(b) }
	newIndex := func() *hashset.Index[rdf.Node, rdf.Triple] {
		return hashset.NewIndex(hashset.IndexConfig[rdf.Node, rdf.Triple]{
			KeyHash: rdf.Node.Hash,
			NewInner: func() *hashset.DualSet[rdf.Triple] {
				return hashset.NewDual(hashset.DualConfig[rdf.Triple]{
					Equal:           tripleEqual,
					InitialCapacity: hashset.MinCapacity,
				})
			},
		})
	}

	return &Graph{
		logger: opts.logger,
		primary: hashset.New(hashset.Config[rdf.Triple]{
			Hash:            rdf.Triple.Hash,
			Equal:           tripleEqual,
			InitialCapacity: opts.initialCapacity,
		}),
		bySubject:   newIndex(),
		byPredicate: newIndex(),
		byObject:    newIndex(),
	}
}

// Len returns the number of triples.
func (g *Graph) Len() int { return g.primary.Len() }

// IsEmpty reports whether the graph holds no triples.
func (g *Graph) IsEmpty() bool { return g.primary.IsEmpty() }

// Add inserts t. It returns false with a nil error when the triple was
// already present.
func (g *Graph) Add(t rdf.Triple) (bool, error) {
	if t.IsZero() {
		return false, ErrInvalidTriple
	}
	hs, hp, ho := t.Subject.Hash(), t.Predicate.Hash(), t.Object.Hash()
	if !g.primary.TryAddHashed(t, rdf.CombineTriple(hs, hp, ho)) {
		return false, nil
	}
	g.bySubject.AddUnchecked(t.Subject, hs, t, hp, ho)
	g.byPredicate.AddUnchecked(t.Predicate, hp, t, hs, ho)
	g.byObject.AddUnchecked(t.Object, ho, t, hs, hp)
	return true, nil
}

// Remove deletes t. It returns false with a nil error when the triple was
// not present.
func (g *Graph) Remove(t rdf.Triple) (bool, error) {
	if t.IsZero() {
		return false, ErrInvalidTriple
	}
	hs, hp, ho := t.Subject.Hash(), t.Predicate.Hash(), t.Object.Hash()
	if !g.primary.TryRemoveHashed(t, rdf.CombineTriple(hs, hp, ho)) {
		return false, nil
	}
	g.bySubject.RemoveUnchecked(t.Subject, hs, t, hp, ho)
	g.byPredicate.RemoveUnchecked(t.Predicate, hp, t, hs, ho)
	g.byObject.RemoveUnchecked(t.Object, ho, t, hs, hp)
	return true, nil
}

// Contains reports whether t is present.
func (g *Graph) Contains(t rdf.Triple) bool {
	if t.IsZero() {
		return false
	}
	return g.primary.ContainsHashed(t, t.Hash())
}

// Clear discards all triples and growth history.
func (g *Graph) Clear() {
	n := g.primary.Len()
	g.primary.Clear()
	g.bySubject.Clear()
	g.byPredicate.Clear()
	g.byObject.Clear()
	g.logger.Debug("graph cleared", slog.Int("triples", n))
}

// All returns a range-over-func view of every triple. Panics with
// ErrConcurrentModification if the graph is mutated during the range.
func (g *Graph) All() iter.Seq[rdf.Triple] { return g.primary.All() }

// WithSubject yields every triple whose subject is s.
func (g *Graph) WithSubject(s rdf.Node) iter.Seq[rdf.Triple] {
	return g.groupSeq(g.bySubject, s)
}

// WithPredicate yields every triple whose predicate is p.
func (g *Graph) WithPredicate(p rdf.Node) iter.Seq[rdf.Triple] {
	return g.groupSeq(g.byPredicate, p)
}

// WithObject yields every triple whose object is o.
func (g *Graph) WithObject(o rdf.Node) iter.Seq[rdf.Triple] {
	return g.groupSeq(g.byObject, o)
}

// WithSubjectPredicate yields every triple matching both s and p. It scans
// the subject group by predicate hash and filters collisions by equality.
func (g *Graph) WithSubjectPredicate(s, p rdf.Node) iter.Seq[rdf.Triple] {
	return g.scanSeq(g.bySubject, s, p.Hash(), func(t rdf.Triple) bool {
		return t.Predicate.Equal(p)
	})
}

// WithSubjectObject yields every triple matching both s and o. It scans the
// object group by subject hash and filters collisions by equality.
func (g *Graph) WithSubjectObject(s, o rdf.Node) iter.Seq[rdf.Triple] {
	return g.scanSeq(g.byObject, o, s.Hash(), func(t rdf.Triple) bool {
		return t.Subject.Equal(s)
	})
}

// WithPredicateObject yields every triple matching both p and o. The
// predicate group's dual placement scans by subject first, so this pattern
// falls back to filtering the whole group by object equality — linear in the
// group size, like the component scans it replaces.
func (g *Graph) WithPredicateObject(p, o rdf.Node) iter.Seq[rdf.Triple] {
	return func(yield func(rdf.Triple) bool) {
		inner, ok := g.byPredicate.Get(p, p.Hash())
		if !ok {
			return
		}
		for t := range inner.All() {
			if t.Object.Equal(o) && !yield(t) {
				return
			}
		}
	}
}

func (g *Graph) groupSeq(ix *hashset.Index[rdf.Node, rdf.Triple], key rdf.Node) iter.Seq[rdf.Triple] {
	return func(yield func(rdf.Triple) bool) {
		inner, ok := ix.Get(key, key.Hash())
		if !ok {
			return
		}
		for t := range inner.All() {
			if !yield(t) {
				return
			}
		}
	}
}

func (g *Graph) scanSeq(ix *hashset.Index[rdf.Node, rdf.Triple], key rdf.Node, hashA uint32, keep func(rdf.Triple) bool) iter.Seq[rdf.Triple] {
	return func(yield func(rdf.Triple) bool) {
		inner, ok := ix.Get(key, key.Hash())
		if !ok {
			return
		}
		for t := range inner.ScanA(hashA).Seq() {
			if keep(t) && !yield(t) {
				return
			}
		}
	}
}
