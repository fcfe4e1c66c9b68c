package tripleidx

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/tripleidx/rdf"
)

// Selection is a materialized query result: a roaring bitmap over the
// primary set's stable triple handles. Selections support set algebra
// without touching the indexes again, so compound patterns are built by
// intersecting per-component selections.
//
// A Selection is a point-in-time snapshot. Handles stay valid until their
// triple is removed; after any graph mutation a Selection may resolve to
// fewer triples than Len reports, or to recycled ones. Re-select after
// mutating.
type Selection struct {
	g    *Graph
	bits *roaring.Bitmap
}

func (g *Graph) newSelection() *Selection {
	return &Selection{g: g, bits: roaring.New()}
}

// SelectWhere materializes every triple accepted by pred. Full scan.
func (g *Graph) SelectWhere(pred func(rdf.Triple) bool) *Selection {
	sel := g.newSelection()
	for h, t := range g.primary.Handles() {
		if pred(t) {
			sel.bits.Add(h)
		}
	}
	return sel
}

// SelectSubject materializes every triple whose subject is s.
func (g *Graph) SelectSubject(s rdf.Node) *Selection {
	return g.selectSeq(g.WithSubject(s))
}

// SelectPredicate materializes every triple whose predicate is p.
func (g *Graph) SelectPredicate(p rdf.Node) *Selection {
	return g.selectSeq(g.WithPredicate(p))
}

// SelectObject materializes every triple whose object is o.
func (g *Graph) SelectObject(o rdf.Node) *Selection {
	return g.selectSeq(g.WithObject(o))
}

func (g *Graph) selectSeq(seq iter.Seq[rdf.Triple]) *Selection {
	sel := g.newSelection()
	for t := range seq {
		if h, ok := g.primary.HandleOfHashed(t, t.Hash()); ok {
			sel.bits.Add(h)
		}
	}
	return sel
}

// Len returns the number of selected handles.
func (sel *Selection) Len() int {
	return int(sel.bits.GetCardinality())
}

// IsEmpty reports whether nothing is selected.
func (sel *Selection) IsEmpty() bool { return sel.bits.IsEmpty() }

// And intersects in place with other and returns the receiver.
func (sel *Selection) And(other *Selection) *Selection {
	sel.bits.And(other.bits)
	return sel
}

// Or unions in place with other and returns the receiver.
func (sel *Selection) Or(other *Selection) *Selection {
	sel.bits.Or(other.bits)
	return sel
}

// AndNot subtracts other in place and returns the receiver.
func (sel *Selection) AndNot(other *Selection) *Selection {
	sel.bits.AndNot(other.bits)
	return sel
}

// Clone returns an independent copy.
func (sel *Selection) Clone() *Selection {
	return &Selection{g: sel.g, bits: sel.bits.Clone()}
}

// Triples resolves the selected handles back to triples, skipping handles
// whose triple has been removed since selection.
func (sel *Selection) Triples() iter.Seq[rdf.Triple] {
	return func(yield func(rdf.Triple) bool) {
		it := sel.bits.Iterator()
		for it.HasNext() {
			if t, ok := sel.g.primary.At(it.Next()); ok {
				if !yield(t) {
					return
				}
			}
		}
	}
}
