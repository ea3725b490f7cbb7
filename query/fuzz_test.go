package query_test

import (
	"testing"

	"github.com/hasbyte1/go-view-query/query"
)

func bytesToInts(data []byte) []int {
	items := make([]int, len(data))
	for i, b := range data {
		items[i] = int(b)
	}
	return items
}

// FuzzTakeSkipPartition checks that for any buffer and any n, Take(n)
// followed by Skip(n) reassembles the original sequence exactly.
//
// Run with: go test -fuzz=FuzzTakeSkipPartition ./query/
func FuzzTakeSkipPartition(f *testing.F) {
	f.Add([]byte{}, 0)
	f.Add([]byte{1, 2, 3, 4, 5}, 2)
	f.Add([]byte{7}, -1)
	f.Add([]byte{1, 1, 2, 2}, 10)

	f.Fuzz(func(t *testing.T, data []byte, n int) {
		items := bytesToInts(data)
		q := query.FromSlice(items)
		got := append(q.Take(n).ToSlice(), q.Skip(n).ToSlice()...)
		if len(got) != len(items) {
			t.Fatalf("partition length = %d; want %d", len(got), len(items))
		}
		for i := range items {
			if got[i] != items[i] {
				t.Fatalf("partition[%d] = %d; want %d", i, got[i], items[i])
			}
		}
	})
}

// FuzzReverseRoundTrip checks that reversing twice restores the original
// order for any buffer.
//
// Run with: go test -fuzz=FuzzReverseRoundTrip ./query/
func FuzzReverseRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1})
	f.Add([]byte{1, 2, 3})
	f.Add([]byte{5, 5, 5, 1})

	f.Fuzz(func(t *testing.T, data []byte) {
		items := bytesToInts(data)
		got := query.FromSlice(items).Reverse().Reverse().ToSlice()
		if len(got) != len(items) {
			t.Fatalf("round-trip length = %d; want %d", len(got), len(items))
		}
		for i := range items {
			if got[i] != items[i] {
				t.Fatalf("round-trip[%d] = %d; want %d", i, got[i], items[i])
			}
		}
	})
}

// FuzzDistinct checks the first-occurrence contract for any buffer: the
// output contains no duplicates, preserves relative order, and running
// Distinct again changes nothing.
//
// Run with: go test -fuzz=FuzzDistinct ./query/
func FuzzDistinct(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1, 2, 3})
	f.Add([]byte{1, 1, 1})
	f.Add([]byte{3, 1, 3, 2, 1})

	f.Fuzz(func(t *testing.T, data []byte) {
		items := bytesToInts(data)
		first := query.Distinct(query.FromSlice(items)).ToSlice()

		seen := make(map[int]bool, len(first))
		for _, v := range first {
			if seen[v] {
				t.Fatalf("duplicate %d in Distinct output %v", v, first)
			}
			seen[v] = true
		}
		for _, v := range items {
			if !seen[v] {
				t.Fatalf("element %d missing from Distinct output %v", v, first)
			}
		}

		second := query.Distinct(query.FromSlice(first)).ToSlice()
		if len(second) != len(first) {
			t.Fatalf("Distinct is not idempotent: %v → %v", first, second)
		}
		for i := range first {
			if second[i] != first[i] {
				t.Fatalf("Distinct reordered on second pass: %v → %v", first, second)
			}
		}
	})
}
