package view

import (
	"errors"
	"fmt"
)

// ErrOutOfScope is the panic value raised when a View created by [Scoped] is
// accessed after its defining function has returned.
var ErrOutOfScope = errors.New("view: view used outside its defining scope")

// scope is the liveness token shared by a scoped View and its subviews.
type scope struct {
	dead bool
}

// View is a read-only, non-owning window over a contiguous run of elements.
//
// The zero value is an empty, always-live view. See the package
// documentation for the borrowing contract.
type View[T any] struct {
	items []T
	guard *scope // nil for unscoped views
}

// Of borrows items as a View. The slice is not copied; the caller must keep
// it alive and unmodified for as long as the view is in use.
func Of[T any](items []T) View[T] {
	return View[T]{items: items}
}

// Empty returns a view over no elements.
func Empty[T any]() View[T] {
	return View[T]{}
}

// Scoped lends a guarded view over items to fn. When fn returns, the view
// (and every subview derived from it) is invalidated: any later access
// panics with [ErrOutOfScope].
//
// Results computed inside fn may be captured by the enclosing scope;
// materialized values are independent of the buffer. Only the view itself
// must not escape.
func Scoped[T any](items []T, fn func(View[T])) {
	g := &scope{}
	defer func() { g.dead = true }()
	fn(View[T]{items: items, guard: g})
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int {
	v.check()
	return len(v.items)
}

// IsEmpty reports whether the view contains no elements.
func (v View[T]) IsEmpty() bool {
	return v.Len() == 0
}

// At returns the element at index i. It panics when i is outside [0, Len()),
// mirroring slice indexing.
func (v View[T]) At(i int) T {
	v.check()
	if i < 0 || i >= len(v.items) {
		panic(fmt.Errorf("view: index %d out of range [0, %d)", i, len(v.items)))
	}
	return v.items[i]
}

// Slice returns a subview over the half-open range [lo, hi). The subview
// shares storage (and any scope guard) with v. Panics when the bounds are
// invalid.
func (v View[T]) Slice(lo, hi int) View[T] {
	v.check()
	if lo < 0 || hi > len(v.items) || lo > hi {
		panic(fmt.Errorf("view: bounds [%d:%d] out of range [0:%d]", lo, hi, len(v.items)))
	}
	return View[T]{items: v.items[lo:hi:hi], guard: v.guard}
}

func (v View[T]) check() {
	if v.guard != nil && v.guard.dead {
		panic(ErrOutOfScope)
	}
}
