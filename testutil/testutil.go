package testutil

import (
	"fmt"
	"math/rand"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	return r.rand.Uint32()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.rand.Shuffle(n, swap)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	return r.rand.Perm(n)
}

// DistinctInts generates n distinct ints drawn from [0, span).
// It panics if span < n.
func (r *RNG) DistinctInts(n, span int) []int {
	if span < n {
		panic(fmt.Sprintf("testutil: span %d too small for %d distinct values", span, n))
	}
	seen := make(map[int]struct{}, n)
	out := make([]int, 0, n)
	for len(out) < n {
		v := r.rand.Intn(span)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
