package hashset

import (
	"fmt"
	"testing"
)

func BenchmarkSet_TryAdd(b *testing.B) {
	b.Run("Distinct", func(b *testing.B) {
		s := intSet(0)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.TryAdd(i)
		}
	})

	b.Run("Duplicate", func(b *testing.B) {
		s := intSet(0)
		s.TryAdd(42)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.TryAdd(42)
		}
	})
}

func BenchmarkSet_Contains(b *testing.B) {
	for _, size := range []int{1_000, 100_000} {
		s := intSet(size)
		for i := 0; i < size; i++ {
			s.AddUnchecked(i)
		}

		b.Run(fmt.Sprintf("hit_n=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s.Contains(i % size)
			}
		})

		b.Run(fmt.Sprintf("miss_n=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s.Contains(size + i%size)
			}
		})
	}
}

// BenchmarkSet_Churn alternates adds and removes at a steady size, keeping
// the backward-shift path and free-list reuse hot.
func BenchmarkSet_Churn(b *testing.B) {
	const window = 1_000
	s := intSet(window * 2)
	for i := 0; i < window; i++ {
		s.AddUnchecked(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.TryAdd(window + i)
		s.TryRemove(i)
	}
}

// BenchmarkSet_ChurnColliding is the same workload with a four-value hash,
// so every removal shifts a long probe run.
func BenchmarkSet_ChurnColliding(b *testing.B) {
	const window = 64
	s := collidingSet(window * 2)
	for i := 0; i < window; i++ {
		s.AddUnchecked(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.TryAdd(window + i)
		s.TryRemove(i)
	}
}

func BenchmarkSet_Iterate(b *testing.B) {
	const size = 100_000
	s := intSet(size)
	for i := 0; i < size; i++ {
		s.AddUnchecked(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range s.All() {
			sum += v
		}
		if sum == 0 {
			b.Fatal("empty iteration")
		}
	}
}

func BenchmarkDualSet_ScanA(b *testing.B) {
	const size = 10_000
	d := NewDual(DualConfig[edge]{
		Equal:           func(a, b edge) bool { return a == b },
		InitialCapacity: size,
	})
	for i := 0; i < size; i++ {
		from := fmt.Sprintf("s%d", i%16)
		to := fmt.Sprintf("o%d", i)
		d.TryAdd(edge{from, to}, hashStr(from), hashStr(to))
	}
	target := hashStr("s7")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		sc := d.ScanA(target)
		for sc.Next() {
			n++
		}
		if n == 0 {
			b.Fatal("scan found nothing")
		}
	}
}
