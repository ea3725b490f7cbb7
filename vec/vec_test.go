package vec_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-view-query/vec"
	"github.com/hasbyte1/go-view-query/view"
)

func nums(ns ...int) view.View[int] {
	return view.Of(ns)
}

// ─── First / Last ─────────────────────────────────────────────────────────────

func TestFirst(t *testing.T) {
	v, ok := vec.First(nums(10, 20, 30))
	if !ok || v != 10 {
		t.Fatalf("First = %v, %v; want 10, true", v, ok)
	}
	_, ok = vec.First(nums())
	if ok {
		t.Fatal("First on empty should return false")
	}
}

func TestFirstWithPredicate(t *testing.T) {
	v, ok := vec.First(nums(1, 2, 3, 4), func(n int) bool { return n > 2 })
	if !ok || v != 3 {
		t.Fatalf("First predicate = %v, %v; want 3, true", v, ok)
	}
	_, ok = vec.First(nums(1, 2), func(n int) bool { return n > 99 })
	if ok {
		t.Fatal("First with no match should return false")
	}
}

func TestLast(t *testing.T) {
	v, ok := vec.Last(nums(10, 20, 30))
	if !ok || v != 30 {
		t.Fatalf("Last = %v, %v; want 30, true", v, ok)
	}
	_, ok = vec.Last(nums())
	if ok {
		t.Fatal("Last on empty should return false")
	}
}

func TestLastWithPredicate(t *testing.T) {
	v, ok := vec.Last(nums(1, 2, 3, 4), func(n int) bool { return n < 3 })
	if !ok || v != 2 {
		t.Fatalf("Last predicate = %v, %v; want 2, true", v, ok)
	}
}

// ─── Contains / Index ─────────────────────────────────────────────────────────

func TestContains(t *testing.T) {
	if !vec.Contains(nums(1, 2, 3), func(n int) bool { return n == 2 }) {
		t.Fatal("Contains should be true")
	}
	if vec.Contains(nums(1, 2, 3), func(n int) bool { return n == 99 }) {
		t.Fatal("Contains should be false")
	}
}

func TestContainsValue(t *testing.T) {
	letters := view.Of([]string{"a", "b", "c"})
	if !vec.ContainsValue(letters, "b") {
		t.Fatal("ContainsValue should be true")
	}
	if vec.ContainsValue(letters, "z") {
		t.Fatal("ContainsValue should be false")
	}
}

func TestIndexOf(t *testing.T) {
	if i := vec.IndexOf(nums(10, 20, 30), 20); i != 1 {
		t.Fatalf("IndexOf = %d; want 1", i)
	}
	if i := vec.IndexOf(nums(10, 20), 99); i != -1 {
		t.Fatalf("IndexOf missing = %d; want -1", i)
	}
}

func TestSearch(t *testing.T) {
	if i := vec.Search(nums(1, 2, 3), func(n int) bool { return n == 3 }); i != 2 {
		t.Fatalf("Search = %d; want 2", i)
	}
	if i := vec.Search(nums(1, 2), func(n int) bool { return n == 9 }); i != -1 {
		t.Fatalf("Search missing = %d; want -1", i)
	}
}

// ─── Quantifiers ──────────────────────────────────────────────────────────────

func TestAny(t *testing.T) {
	if !vec.Any(nums(1)) {
		t.Fatal("Any on non-empty should be true")
	}
	if vec.Any(nums()) {
		t.Fatal("Any on empty should be false")
	}
	if !vec.Any(nums(1, 2, 3), func(n int) bool { return n == 2 }) {
		t.Fatal("Any with matching predicate should be true")
	}
}

func TestAll(t *testing.T) {
	if !vec.All(nums(2, 4, 6), func(n int) bool { return n%2 == 0 }) {
		t.Fatal("All should be true")
	}
	if vec.All(nums(2, 3), func(n int) bool { return n%2 == 0 }) {
		t.Fatal("All should be false")
	}
	if !vec.All(nums(), func(n int) bool { return false }) {
		t.Fatal("All on empty should be vacuously true")
	}
}

func TestCount(t *testing.T) {
	if n := vec.Count(nums(1, 2, 3, 4)); n != 4 {
		t.Fatalf("Count = %d; want 4", n)
	}
	if n := vec.Count(nums(1, 2, 3, 4), func(n int) bool { return n%2 == 0 }); n != 2 {
		t.Fatalf("Count predicate = %d; want 2", n)
	}
}

// ─── Aggregation ──────────────────────────────────────────────────────────────

func TestSum(t *testing.T) {
	if s := vec.Sum(nums(1, 2, 3, 4, 5)); s != 15 {
		t.Fatalf("Sum = %d; want 15", s)
	}
	if s := vec.Sum(nums()); s != 0 {
		t.Fatalf("Sum of empty = %d; want 0", s)
	}
}

func TestSumOf(t *testing.T) {
	words := view.Of([]string{"a", "bb", "ccc"})
	if s := vec.SumOf(words, func(s string) int { return len(s) }); s != 6 {
		t.Fatalf("SumOf = %d; want 6", s)
	}
}

func TestAverage(t *testing.T) {
	if avg := vec.Average(nums(1, 2, 3, 4, 5)); avg != 3 {
		t.Fatalf("Average = %f; want 3", avg)
	}
	if avg := vec.Average(nums()); avg != 0 {
		t.Fatal("Average of empty should be 0")
	}
}

func TestAverageOf(t *testing.T) {
	words := view.Of([]string{"a", "bb", "ccc"})
	if avg := vec.AverageOf(words, func(s string) int { return len(s) }); avg != 2 {
		t.Fatalf("AverageOf = %f; want 2", avg)
	}
}

func TestMin(t *testing.T) {
	v, ok := vec.Min(nums(3, 1, 4, 1, 5))
	if !ok || v != 1 {
		t.Fatalf("Min = %v, %v; want 1, true", v, ok)
	}
	_, ok = vec.Min(nums())
	if ok {
		t.Fatal("Min on empty should return false")
	}
}

func TestMax(t *testing.T) {
	v, ok := vec.Max(nums(3, 1, 4, 1, 5))
	if !ok || v != 5 {
		t.Fatalf("Max = %v, %v; want 5, true", v, ok)
	}
}

func TestMinBy(t *testing.T) {
	words := view.Of([]string{"apple", "fig", "banana"})
	v, ok := vec.MinBy(words, func(s string) int { return len(s) })
	if !ok || v != "fig" {
		t.Fatalf("MinBy = %q, %v; want fig, true", v, ok)
	}
	_, ok = vec.MinBy(view.Empty[string](), func(s string) int { return len(s) })
	if ok {
		t.Fatal("MinBy on empty should return false")
	}
}

func TestMaxBy(t *testing.T) {
	words := view.Of([]string{"apple", "fig", "banana"})
	v, ok := vec.MaxBy(words, func(s string) int { return len(s) })
	if !ok || v != "banana" {
		t.Fatalf("MaxBy = %q, %v; want banana, true", v, ok)
	}
}

func TestMaxByTiesKeepEarliest(t *testing.T) {
	words := view.Of([]string{"bb", "aa", "c"})
	v, ok := vec.MaxBy(words, func(s string) int { return len(s) })
	if !ok || v != "bb" {
		t.Fatalf("MaxBy tie = %q; want bb (earliest)", v)
	}
}

// ─── Reduce / Each ────────────────────────────────────────────────────────────

func TestReduce(t *testing.T) {
	sum := vec.Reduce(nums(1, 2, 3, 4, 5), func(acc, n, _ int) int { return acc + n }, 0)
	if sum != 15 {
		t.Fatalf("Reduce = %d; want 15", sum)
	}
}

func TestReduceChangesType(t *testing.T) {
	s := vec.Reduce(nums(1, 2, 3), func(acc string, n, _ int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	if s != "1,2,3" {
		t.Fatalf("Reduce = %q; want \"1,2,3\"", s)
	}
}

func TestEach(t *testing.T) {
	sum := 0
	var idx []int
	vec.Each(nums(1, 2, 3, 4), func(n, i int) {
		sum += n
		idx = append(idx, i)
	})
	if sum != 10 {
		t.Fatalf("Each sum = %d; want 10", sum)
	}
	if len(idx) != 4 || idx[0] != 0 || idx[3] != 3 {
		t.Fatalf("Each indexes = %v", idx)
	}
}
