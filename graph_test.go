package tripleidx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tripleidx/rdf"
	"github.com/hupe1980/tripleidx/testutil"
)

func iri(s string) rdf.Node { return rdf.NewIRI("http://example.org/" + s) }
func lit(s string) rdf.Node { return rdf.NewLiteral(s) }

func collect(seq func(func(rdf.Triple) bool)) []rdf.Triple {
	var out []rdf.Triple
	for t := range seq {
		out = append(out, t)
	}
	return out
}

func TestGraph_AddRemoveContains(t *testing.T) {
	g := New()
	tr := rdf.NewTriple(iri("alice"), iri("knows"), iri("bob"))

	added, err := g.Add(tr)
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 1, g.Len())
	require.True(t, g.Contains(tr))

	added, err = g.Add(tr)
	require.NoError(t, err)
	require.False(t, added, "duplicate add")
	require.Equal(t, 1, g.Len())

	removed, err := g.Remove(tr)
	require.NoError(t, err)
	require.True(t, removed)
	require.False(t, g.Contains(tr))
	require.True(t, g.IsEmpty())

	removed, err = g.Remove(tr)
	require.NoError(t, err)
	require.False(t, removed, "remove of absent triple")
}

func TestGraph_InvalidTriple(t *testing.T) {
	g := New()

	_, err := g.Add(rdf.Triple{})
	assert.ErrorIs(t, err, ErrInvalidTriple)

	_, err = g.Remove(rdf.NewTriple(iri("a"), rdf.Node{}, iri("b")))
	assert.ErrorIs(t, err, ErrInvalidTriple)

	assert.False(t, g.Contains(rdf.Triple{}))
	assert.Equal(t, 0, g.Len())
}

// TestGraph_DualKeyScenario is the subject+object dual-hash scenario: with
// (A,p,1), (A,p,2), (B,p,1) indexed, restricting the predicate group by
// subject A yields exactly the two A-triples, and removing (A,p,1) leaves
// (A,p,2) fully reachable.
func TestGraph_DualKeyScenario(t *testing.T) {
	g := New()
	p := iri("p")
	ap1 := rdf.NewTriple(iri("A"), p, lit("1"))
	ap2 := rdf.NewTriple(iri("A"), p, lit("2"))
	bp1 := rdf.NewTriple(iri("B"), p, lit("1"))

	for _, tr := range []rdf.Triple{ap1, ap2, bp1} {
		added, err := g.Add(tr)
		require.NoError(t, err)
		require.True(t, added)
	}

	got := collect(g.WithSubjectPredicate(iri("A"), p))
	assert.ElementsMatch(t, []rdf.Triple{ap1, ap2}, got)

	removed, err := g.Remove(ap1)
	require.NoError(t, err)
	require.True(t, removed)

	assert.False(t, g.Contains(ap1))
	assert.True(t, g.Contains(ap2))
	assert.ElementsMatch(t, []rdf.Triple{ap2}, collect(g.WithSubjectPredicate(iri("A"), p)))
}

func TestGraph_ComponentQueries(t *testing.T) {
	g := New()
	triples := []rdf.Triple{
		rdf.NewTriple(iri("a"), iri("p"), lit("1")),
		rdf.NewTriple(iri("a"), iri("p"), lit("2")),
		rdf.NewTriple(iri("a"), iri("q"), lit("1")),
		rdf.NewTriple(iri("b"), iri("p"), lit("1")),
		rdf.NewTriple(iri("b"), iri("q"), lit("3")),
	}
	for _, tr := range triples {
		_, err := g.Add(tr)
		require.NoError(t, err)
	}

	assert.Len(t, collect(g.WithSubject(iri("a"))), 3)
	assert.Len(t, collect(g.WithPredicate(iri("p"))), 3)
	assert.Len(t, collect(g.WithObject(lit("1"))), 3)

	assert.ElementsMatch(t,
		[]rdf.Triple{triples[0], triples[1]},
		collect(g.WithSubjectPredicate(iri("a"), iri("p"))))
	assert.ElementsMatch(t,
		[]rdf.Triple{triples[0], triples[2]},
		collect(g.WithSubjectObject(iri("a"), lit("1"))))
	assert.ElementsMatch(t,
		[]rdf.Triple{triples[0], triples[3]},
		collect(g.WithPredicateObject(iri("p"), lit("1"))))

	assert.Empty(t, collect(g.WithSubject(iri("zzz"))))
	assert.Empty(t, collect(g.WithSubjectPredicate(iri("a"), iri("zzz"))))
}

func TestGraph_QueriesAfterRemovalCascade(t *testing.T) {
	g := New()
	tr := rdf.NewTriple(iri("a"), iri("p"), lit("1"))
	_, err := g.Add(tr)
	require.NoError(t, err)

	_, err = g.Remove(tr)
	require.NoError(t, err)

	assert.Empty(t, collect(g.WithSubject(iri("a"))))
	assert.Empty(t, collect(g.WithPredicate(iri("p"))))
	assert.Empty(t, collect(g.WithObject(lit("1"))))
	assert.Empty(t, collect(g.All()))
}

func TestGraph_Clear(t *testing.T) {
	g := New(WithInitialCapacity(2), WithLogger(NoopLogger()))
	for i := 0; i < 20; i++ {
		_, err := g.Add(rdf.NewTriple(iri(fmt.Sprintf("s%d", i)), iri("p"), lit("o")))
		require.NoError(t, err)
	}
	g.Clear()

	assert.Equal(t, 0, g.Len())
	assert.Empty(t, collect(g.WithPredicate(iri("p"))))

	added, err := g.Add(rdf.NewTriple(iri("s"), iri("p"), lit("o")))
	require.NoError(t, err)
	assert.True(t, added)
}

// TestGraph_RandomizedAgainstReference interleaves adds and removes over a
// small vocabulary (maximizing collisions in every index) and checks the
// graph against a reference map after every operation, with periodic query
// cross-checks.
func TestGraph_RandomizedAgainstReference(t *testing.T) {
	rng := testutil.NewRNG(99)
	g := New(WithInitialCapacity(2))
	ref := make(map[rdf.Triple]struct{})

	subjects := make([]rdf.Node, 6)
	predicates := make([]rdf.Node, 4)
	objects := make([]rdf.Node, 6)
	for i := range subjects {
		subjects[i] = iri(fmt.Sprintf("s%d", i))
	}
	for i := range predicates {
		predicates[i] = iri(fmt.Sprintf("p%d", i))
	}
	for i := range objects {
		objects[i] = lit(fmt.Sprintf("o%d", i))
	}

	randTriple := func() rdf.Triple {
		return rdf.NewTriple(
			subjects[rng.Intn(len(subjects))],
			predicates[rng.Intn(len(predicates))],
			objects[rng.Intn(len(objects))],
		)
	}

	for i := 0; i < 10000; i++ {
		tr := randTriple()
		if rng.Float64() < 0.55 {
			_, dup := ref[tr]
			added, err := g.Add(tr)
			require.NoError(t, err)
			require.Equal(t, !dup, added, "op %d: Add(%v)", i, tr)
			ref[tr] = struct{}{}
		} else {
			_, present := ref[tr]
			removed, err := g.Remove(tr)
			require.NoError(t, err)
			require.Equal(t, present, removed, "op %d: Remove(%v)", i, tr)
			delete(ref, tr)
		}

		require.Equal(t, len(ref), g.Len(), "op %d", i)

		probe := randTriple()
		_, want := ref[probe]
		require.Equal(t, want, g.Contains(probe), "op %d: Contains(%v)", i, probe)

		if i%500 == 0 {
			s := subjects[rng.Intn(len(subjects))]
			want := 0
			for tr := range ref {
				if tr.Subject.Equal(s) {
					want++
				}
			}
			require.Len(t, collect(g.WithSubject(s)), want, "op %d: WithSubject(%v)", i, s)
		}
	}

	for tr := range ref {
		require.True(t, g.Contains(tr))
	}
	require.Equal(t, len(ref), len(collect(g.All())))
}
