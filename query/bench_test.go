package query_test

import (
	"math/rand"
	"testing"

	"github.com/hasbyte1/go-view-query/query"
)

// makeInts builds a Query[int] over 1..n for benchmarks.
func makeInts(n int) query.Query[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return query.FromSlice(items)
}

func BenchmarkWhereCount(b *testing.B) {
	q := makeInts(10_000).Where(func(n, _ int) bool { return n%2 == 0 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Count()
	}
}

func BenchmarkSelectSum(b *testing.B) {
	q := query.Select(makeInts(10_000), func(n, _ int) int { return n * 2 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		query.Sum(q)
	}
}

func BenchmarkToSlice(b *testing.B) {
	q := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.ToSlice()
	}
}

func BenchmarkFirstMatch(b *testing.B) {
	// Early termination: only a handful of elements are ever pulled.
	q := makeInts(10_000).Where(func(n, _ int) bool { return n == 5 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.FirstOrDefault()
	}
}

func BenchmarkOrderByKey(b *testing.B) {
	shuffled := rand.New(rand.NewSource(1)).Perm(10_000)
	q := query.OrderByKey(query.FromSlice(shuffled), func(n int) int { return n })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Count()
	}
}

func BenchmarkDistinct(b *testing.B) {
	// 50% duplicates
	items := make([]int, 10_000)
	for i := range items {
		items[i] = i % 5000
	}
	q := query.Distinct(query.FromSlice(items))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Count()
	}
}

func BenchmarkGroupBy(b *testing.B) {
	q := query.GroupBy(makeInts(10_000), func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Count()
	}
}

func BenchmarkChunk(b *testing.B) {
	q := query.Chunk(makeInts(10_000), 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Count()
	}
}

func BenchmarkZip(b *testing.B) {
	q := query.Zip(makeInts(10_000), makeInts(10_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Count()
	}
}

func BenchmarkReverse(b *testing.B) {
	q := makeInts(10_000).Reverse()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Count()
	}
}
