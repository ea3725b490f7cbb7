// Package view provides View[T], a bounds-checked, read-only, non-owning
// window over a caller's slice — the "borrowed buffer" that the query
// package iterates over.
//
// # Borrowing
//
// A View never copies, allocates, or frees element storage. It borrows the
// slice handed to [Of] and the caller remains the owner: the slice must stay
// alive, and must not be mutated, for as long as any View (or any query
// built on it) is in use. In exchange, wrapping a buffer is free:
//
//	data := []int{3, 1, 4, 1, 5}
//	v := view.Of(data) // no copy, no allocation
//
// Views are values. Copying a View copies the window, not the elements, and
// subviews made with [View.Slice] share the same underlying storage.
//
// The contract has one hard rule: a View must not be stored in a structure
// that outlives the buffer it borrows. Keep views on the stack, pass them
// down the call chain, and materialize (copy out) anything that needs to
// live longer.
//
// # Scope guards
//
// Go cannot check borrow lifetimes at compile time, so [Scoped] offers a
// runtime guard for callers who want the rule enforced: it lends a View to a
// function and invalidates it when the function returns. Any access after
// that panics with [ErrOutOfScope], turning a silent lifetime bug into an
// immediate, attributable failure:
//
//	view.Scoped(data, func(v view.View[int]) {
//	    leaked = v // wrong: v escapes its block
//	})
//	leaked.At(0)   // panics with ErrOutOfScope
//
// Views created with [Of] carry no guard and only pay bounds checks.
package view
