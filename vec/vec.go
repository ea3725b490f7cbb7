package vec

import (
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-view-query/view"
)

// Number is the constraint accepted by the numeric helpers: any integer or
// floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0]. Returns the
// zero value and false when v is empty or no element matches.
func First[T any](v view.View[T], fns ...func(T) bool) (T, bool) {
	for i := 0; i < v.Len(); i++ {
		item := v.At(i)
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element, optionally matching fns[0]. Returns the
// zero value and false when v is empty or no element matches.
func Last[T any](v view.View[T], fns ...func(T) bool) (T, bool) {
	for i := v.Len() - 1; i >= 0; i-- {
		item := v.At(i)
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](v view.View[T], fn func(T) bool) bool {
	return Search(v, fn) >= 0
}

// ContainsValue reports whether v contains value (requires comparable T).
func ContainsValue[T comparable](v view.View[T], value T) bool {
	return IndexOf(v, value) >= 0
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](v view.View[T], value T) int {
	for i := 0; i < v.Len(); i++ {
		if v.At(i) == value {
			return i
		}
	}
	return -1
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](v view.View[T], fn func(T) bool) int {
	for i := 0; i < v.Len(); i++ {
		if fn(v.At(i)) {
			return i
		}
	}
	return -1
}

// Any reports whether v has any element, or — given a predicate — any
// element satisfying fns[0].
func Any[T any](v view.View[T], fns ...func(T) bool) bool {
	if len(fns) == 0 {
		return v.Len() > 0
	}
	return Search(v, fns[0]) >= 0
}

// All reports whether every element satisfies fn. An empty view is
// vacuously true.
func All[T any](v view.View[T], fn func(T) bool) bool {
	for i := 0; i < v.Len(); i++ {
		if !fn(v.At(i)) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements, or — given a predicate — the
// number of elements satisfying fns[0].
func Count[T any](v view.View[T], fns ...func(T) bool) int {
	if len(fns) == 0 {
		return v.Len()
	}
	n := 0
	for i := 0; i < v.Len(); i++ {
		if fns[0](v.At(i)) {
			n++
		}
	}
	return n
}

// Sum adds the elements. The empty sum is zero.
func Sum[T Number](v view.View[T]) T {
	var total T
	for i := 0; i < v.Len(); i++ {
		total += v.At(i)
	}
	return total
}

// SumOf adds the values projected by fn.
func SumOf[T any, N Number](v view.View[T], fn func(T) N) N {
	var total N
	for i := 0; i < v.Len(); i++ {
		total += fn(v.At(i))
	}
	return total
}

// Average returns the arithmetic mean of the elements, or 0 for an empty
// view.
func Average[T Number](v view.View[T]) float64 {
	if v.Len() == 0 {
		return 0
	}
	return float64(Sum(v)) / float64(v.Len())
}

// AverageOf returns the arithmetic mean of the values projected by fn, or
// 0 for an empty view.
func AverageOf[T any, N Number](v view.View[T], fn func(T) N) float64 {
	if v.Len() == 0 {
		return 0
	}
	return float64(SumOf(v, fn)) / float64(v.Len())
}

// Min returns the smallest element under natural ordering. Returns the
// zero value and false when v is empty.
func Min[T constraints.Ordered](v view.View[T]) (T, bool) {
	if v.Len() == 0 {
		var zero T
		return zero, false
	}
	min := v.At(0)
	for i := 1; i < v.Len(); i++ {
		if item := v.At(i); item < min {
			min = item
		}
	}
	return min, true
}

// Max returns the largest element under natural ordering. Returns the zero
// value and false when v is empty.
func Max[T constraints.Ordered](v view.View[T]) (T, bool) {
	if v.Len() == 0 {
		var zero T
		return zero, false
	}
	max := v.At(0)
	for i := 1; i < v.Len(); i++ {
		if item := v.At(i); item > max {
			max = item
		}
	}
	return max, true
}

// MinBy returns the element with the smallest key extracted by fn; on ties
// the earliest element wins. Returns the zero value and false when v is
// empty.
func MinBy[T any, K constraints.Ordered](v view.View[T], fn func(T) K) (T, bool) {
	if v.Len() == 0 {
		var zero T
		return zero, false
	}
	item := v.At(0)
	best := fn(item)
	for i := 1; i < v.Len(); i++ {
		cand := v.At(i)
		if k := fn(cand); k < best {
			item, best = cand, k
		}
	}
	return item, true
}

// MaxBy returns the element with the largest key extracted by fn; on ties
// the earliest element wins. Returns the zero value and false when v is
// empty.
func MaxBy[T any, K constraints.Ordered](v view.View[T], fn func(T) K) (T, bool) {
	if v.Len() == 0 {
		var zero T
		return zero, false
	}
	item := v.At(0)
	best := fn(item)
	for i := 1; i < v.Len(); i++ {
		cand := v.At(i)
		if k := fn(cand); k > best {
			item, best = cand, k
		}
	}
	return item, true
}

// Reduce reduces the elements to a single value of type U, threading an
// accumulator through fn(acc, item, index).
func Reduce[T, U any](v view.View[T], fn func(U, T, int) U, initial U) U {
	acc := initial
	for i := 0; i < v.Len(); i++ {
		acc = fn(acc, v.At(i), i)
	}
	return acc
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element.
func Each[T any](v view.View[T], fn func(T, int)) {
	for i := 0; i < v.Len(); i++ {
		fn(v.At(i), i)
	}
}
