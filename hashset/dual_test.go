package hashset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edge is a two-component test value; from/to hashes stand in for the two
// independently hashed sub-components.
type edge struct {
	from, to string
}

func hashStr(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h = (h ^ uint32(s[i])) * 16777619
	}
	return h
}

func edgeSet() *DualSet[edge] {
	return NewDual(DualConfig[edge]{
		Equal:           func(a, b edge) bool { return a == b },
		InitialCapacity: 2,
	})
}

func addEdge(d *DualSet[edge], from, to string) bool {
	return d.TryAdd(edge{from, to}, hashStr(from), hashStr(to))
}

func TestDualSet_AddRemoveContains(t *testing.T) {
	d := edgeSet()

	require.True(t, addEdge(d, "a", "x"))
	require.True(t, addEdge(d, "a", "y"))
	require.False(t, addEdge(d, "a", "x"), "duplicate")
	require.Equal(t, 2, d.Len())

	e := edge{"a", "x"}
	require.True(t, d.Contains(e, hashStr("a"), hashStr("x")))
	require.True(t, d.TryRemove(e, hashStr("a"), hashStr("x")))
	require.False(t, d.Contains(e, hashStr("a"), hashStr("x")))
	require.True(t, d.Contains(edge{"a", "y"}, hashStr("a"), hashStr("y")))
	require.Equal(t, 1, d.Len())
}

func TestDualSet_ScanA(t *testing.T) {
	d := edgeSet()
	require.True(t, addEdge(d, "A", "1"))
	require.True(t, addEdge(d, "A", "2"))
	require.True(t, addEdge(d, "B", "1"))

	var got []edge
	sc := d.ScanA(hashStr("A"))
	for sc.Next() {
		got = append(got, sc.Value())
	}
	require.NoError(t, sc.Err())
	assert.ElementsMatch(t, []edge{{"A", "1"}, {"A", "2"}}, got)

	// Removing one leaves the other reachable by scan and by contains.
	require.True(t, d.TryRemove(edge{"A", "1"}, hashStr("A"), hashStr("1")))
	require.False(t, d.Contains(edge{"A", "1"}, hashStr("A"), hashStr("1")))
	require.True(t, d.Contains(edge{"A", "2"}, hashStr("A"), hashStr("2")))

	got = got[:0]
	for e := range d.ScanA(hashStr("A")).Seq() {
		got = append(got, e)
	}
	assert.Equal(t, []edge{{"A", "2"}}, got)
}

func TestDualSet_ScanAB(t *testing.T) {
	d := edgeSet()
	addEdge(d, "A", "1")
	addEdge(d, "A", "2")
	addEdge(d, "B", "1")

	var got []edge
	for e := range d.ScanAB(hashStr("A"), hashStr("2")).Seq() {
		got = append(got, e)
	}
	assert.Equal(t, []edge{{"A", "2"}}, got)
}

func TestDualSet_ScanMissesNothingAcrossGrowth(t *testing.T) {
	d := edgeSet()
	for i := 0; i < 100; i++ {
		require.True(t, addEdge(d, "hub", fmt.Sprintf("n%d", i)))
	}
	count := 0
	for range d.ScanA(hashStr("hub")).Seq() {
		count++
	}
	assert.Equal(t, 100, count)
}

func TestDualSet_ScanConcurrentModification(t *testing.T) {
	d := edgeSet()
	addEdge(d, "A", "1")
	addEdge(d, "A", "2")

	sc := d.ScanA(hashStr("A"))
	require.True(t, sc.Next())

	addEdge(d, "A", "3")

	require.False(t, sc.Next())
	assert.ErrorIs(t, sc.Err(), ErrConcurrentModification)
}

func TestDualSet_UncheckedMirrors(t *testing.T) {
	checked := edgeSet()
	mirror := edgeSet()

	pairs := []edge{{"a", "1"}, {"b", "2"}, {"a", "2"}, {"c", "1"}}
	for _, e := range pairs {
		ha, hb := hashStr(e.from), hashStr(e.to)
		if checked.TryAdd(e, ha, hb) {
			mirror.AddUnchecked(e, ha, hb)
		}
	}
	require.Equal(t, checked.Len(), mirror.Len())

	for _, e := range pairs {
		ha, hb := hashStr(e.from), hashStr(e.to)
		if checked.TryRemove(e, ha, hb) {
			mirror.RemoveUnchecked(e, ha, hb)
		}
	}
	assert.True(t, mirror.IsEmpty())
}
