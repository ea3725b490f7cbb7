package query

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/queues/circularbuffer"
)

// Terminal operators drive a fresh stage chain built from the handle's
// recipe. Each one advances only as far as its own stopping condition
// requires, so early-terminating operators never touch the rest of the
// buffer.

// ─────────────────────────────────────────────────────────────────────────────
// Materialization & iteration
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice drives the pipeline and collects every element, in order, into a
// freshly allocated slice independent of the underlying buffer.
func (q Query[T]) ToSlice() []T {
	var out []T
	for s := q.Stage(); s.Next(); {
		out = append(out, s.Value())
	}
	return out
}

// Each drives the pipeline, calling fn(element, index) for every element.
func (q Query[T]) Each(fn func(item T, index int)) {
	i := 0
	for s := q.Stage(); s.Next(); i++ {
		fn(s.Value(), i)
	}
}

// Range drives the pipeline, calling fn(element, index) until fn returns
// false or the pipeline is exhausted. After an early stop the pipeline is
// not advanced again.
func (q Query[T]) Range(fn func(item T, index int) bool) {
	i := 0
	for s := q.Stage(); s.Next(); i++ {
		if !fn(s.Value(), i) {
			return
		}
	}
}

// Seq returns a range-over-func view of the pipeline. Each `for range`
// loop over the result is an independent traversal; breaking out stops
// advancing immediately.
func (q Query[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := q.Stage(); s.Next(); {
			if !yield(s.Value()) {
				return
			}
		}
	}
}

// Seq2 is like [Query.Seq] with the element's position as the key.
func (q Query[T]) Seq2() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for s := q.Stage(); s.Next(); i++ {
			if !yield(i, s.Value()) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Counting
// ─────────────────────────────────────────────────────────────────────────────

// Count drives the pipeline and returns the number of elements produced.
func (q Query[T]) Count() int {
	n := 0
	for s := q.Stage(); s.Next(); {
		n++
	}
	return n
}

// Count64 is Count with an int64 result, for pipelines (flattening,
// concatenation) whose element count can exceed the platform int on
// 32-bit targets.
func (q Query[T]) Count64() int64 {
	var n int64
	for s := q.Stage(); s.Next(); {
		n++
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional terminals
//
// The optional variadic predicate follows one rule everywhere: with no
// predicate, an empty pipeline is ErrEmptySequence; with one, finding no
// qualifying element is ErrNoMatch. Only fns[0] is consulted.
// ─────────────────────────────────────────────────────────────────────────────

// First drives the pipeline until the first element — or, given a
// predicate, the first element satisfying it — and stops there.
func (q Query[T]) First(fns ...func(T) bool) (T, error) {
	var zero T
	s := q.Stage()
	if len(fns) == 0 {
		if !s.Next() {
			return zero, ErrEmptySequence
		}
		return s.Value(), nil
	}
	for s.Next() {
		if v := s.Value(); fns[0](v) {
			return v, nil
		}
	}
	return zero, ErrNoMatch
}

// FirstOrDefault is [Query.First] returning the zero value instead of an
// error.
func (q Query[T]) FirstOrDefault(fns ...func(T) bool) T {
	v, err := q.First(fns...)
	if err != nil {
		var zero T
		return zero
	}
	return v
}

// Last drives the pipeline to exhaustion and returns the final element —
// or, given a predicate, the final element satisfying it.
func (q Query[T]) Last(fns ...func(T) bool) (T, error) {
	var last T
	found := false
	s := q.Stage()
	if len(fns) == 0 {
		for s.Next() {
			last = s.Value()
			found = true
		}
		if !found {
			return last, ErrEmptySequence
		}
		return last, nil
	}
	for s.Next() {
		if v := s.Value(); fns[0](v) {
			last = v
			found = true
		}
	}
	if !found {
		var zero T
		return zero, ErrNoMatch
	}
	return last, nil
}

// LastOrDefault is [Query.Last] returning the zero value instead of an
// error.
func (q Query[T]) LastOrDefault(fns ...func(T) bool) T {
	v, err := q.Last(fns...)
	if err != nil {
		var zero T
		return zero
	}
	return v
}

// Single returns the only element — or, given a predicate, the only
// qualifying element. It stops advancing as soon as a second qualifying
// element proves the sequence ambiguous, returning ErrMultipleElements.
func (q Query[T]) Single(fns ...func(T) bool) (T, error) {
	var zero T
	s := q.Stage()
	if len(fns) == 0 {
		if !s.Next() {
			return zero, ErrEmptySequence
		}
		v := s.Value()
		if s.Next() {
			return zero, ErrMultipleElements
		}
		return v, nil
	}
	var match T
	found := false
	for s.Next() {
		v := s.Value()
		if !fns[0](v) {
			continue
		}
		if found {
			return zero, ErrMultipleElements
		}
		match = v
		found = true
	}
	if !found {
		return zero, ErrNoMatch
	}
	return match, nil
}

// SingleOrDefault is [Query.Single] substituting the zero value for an
// empty or non-matching pipeline. Ambiguity is still an error: finding
// more than one qualifying element returns ErrMultipleElements.
func (q Query[T]) SingleOrDefault(fns ...func(T) bool) (T, error) {
	v, err := q.Single(fns...)
	if err != nil {
		var zero T
		if errors.Is(err, ErrMultipleElements) {
			return zero, err
		}
		return zero, nil
	}
	return v, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexed access
// ─────────────────────────────────────────────────────────────────────────────

// ElementAt drives the pipeline to the element at 0-based position i and
// stops there. Positions outside the sequence return ErrIndexOutOfRange.
func (q Query[T]) ElementAt(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	n := 0
	for s := q.Stage(); s.Next(); n++ {
		if n == i {
			return s.Value(), nil
		}
	}
	return zero, fmt.Errorf("%w: %d, length %d", ErrIndexOutOfRange, i, n)
}

// ElementAtOrDefault is [Query.ElementAt] returning the zero value instead
// of an error.
func (q Query[T]) ElementAtOrDefault(i int) T {
	v, err := q.ElementAt(i)
	if err != nil {
		var zero T
		return zero
	}
	return v
}

// ElementAtFromEnd returns the element at 1-based distance n from the end:
// n = 1 is the last element and n = length is the first. n = 0 is invalid,
// and n beyond the length returns ErrIndexOutOfRange. A bounded ring keeps
// the traversal single-pass without materializing the sequence.
func (q Query[T]) ElementAtFromEnd(n int) (T, error) {
	var zero T
	if n <= 0 {
		return zero, fmt.Errorf("%w: from-end distance %d is not 1-based", ErrIndexOutOfRange, n)
	}
	ring := circularbuffer.New(n)
	length := 0
	for s := q.Stage(); s.Next(); {
		ring.Enqueue(s.Value())
		length++
	}
	if length < n {
		return zero, fmt.Errorf("%w: from-end distance %d, length %d", ErrIndexOutOfRange, n, length)
	}
	v, _ := ring.Dequeue()
	return v.(T), nil
}

// ElementAtFromEndOrDefault is [Query.ElementAtFromEnd] returning the zero
// value instead of an error.
func (q Query[T]) ElementAtFromEndOrDefault(n int) T {
	v, err := q.ElementAtFromEnd(n)
	if err != nil {
		var zero T
		return zero
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Quantifiers
// ─────────────────────────────────────────────────────────────────────────────

// Any reports whether the pipeline produces any element — or, given a
// predicate, any element satisfying it. Stops at the first hit.
func (q Query[T]) Any(fns ...func(T) bool) bool {
	s := q.Stage()
	if len(fns) == 0 {
		return s.Next()
	}
	for s.Next() {
		if fns[0](s.Value()) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies fn. Stops at the first
// failure; an empty pipeline is vacuously true.
func (q Query[T]) All(fn func(T) bool) bool {
	for s := q.Stage(); s.Next(); {
		if !fn(s.Value()) {
			return false
		}
	}
	return true
}

// ContainsFunc reports whether the pipeline produces an element equal to
// value under eq. Stops at the first hit. For naturally comparable
// elements the package-level [Contains] avoids the explicit equality.
func (q Query[T]) ContainsFunc(value T, eq func(a, b T) bool) bool {
	for s := q.Stage(); s.Next(); {
		if eq(s.Value(), value) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding & joining
// ─────────────────────────────────────────────────────────────────────────────

// Aggregate folds the elements with fn, seeding the accumulator with the
// first element. An empty pipeline returns ErrEmptySequence; use the
// package-level [Fold] for a seeded fold that cannot fail.
func (q Query[T]) Aggregate(fn func(acc, item T) T) (T, error) {
	s := q.Stage()
	if !s.Next() {
		var zero T
		return zero, ErrEmptySequence
	}
	acc := s.Value()
	for s.Next() {
		acc = fn(acc, s.Value())
	}
	return acc, nil
}

// Implode drives the pipeline and joins the string form of every element
// with sep.
func (q Query[T]) Implode(sep string, fn func(T) string) string {
	var b strings.Builder
	first := true
	for s := q.Stage(); s.Next(); {
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(fn(s.Value()))
		first = false
	}
	return b.String()
}
