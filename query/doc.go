// Package query provides a lazily-evaluated, composable query pipeline
// over borrowed buffers ([view.View]), in the spirit of .NET's LINQ to
// Objects.
//
// # Overview
//
// A pipeline is built by chaining operators on a [Query] handle and is run
// by a terminal operator. Nothing touches the buffer until a terminal
// drives the pipeline, and early-terminating terminals stop reading as
// soon as they can:
//
//	v := view.Of([]int{7, 2, 9, 4, 3, 8})
//
//	top, _ := query.From(v).
//	    Where(func(n, _ int) bool { return n%2 == 0 }).
//	    OrderByDescending(func(a, b int) int { return a - b }).
//	    First() // → 8; only the Where survivors are ever buffered
//
// # Recipes, not cursors
//
// A Query holds no iteration state. It is a recipe: a factory for the
// chain of pull stages that one traversal needs. Every terminal call
// builds a fresh chain, so a handle can be stored, copied, and re-run —
// each use restarts from the beginning, and advancing one traversal never
// affects another. The cost of this model is one small allocation per
// operator per traversal; single-pass operators allocate nothing further
// while iterating.
//
// # Borrowing
//
// Queries read from a [view.View], a non-owning window over caller memory
// (plain slices enter via [FromSlice] or [Of]). The buffer must stay alive
// and unmodified while any query over it is in use. Materializing
// terminals (ToSlice, ToMap, …) copy elements out, so their results are
// independent of the buffer; a query itself must not outlive it. See the
// view package for the full contract and the scope guard.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
//
//	// Method-based (returns Query[any]):
//	q.Select(func(n, _ int) any { return n * 2 })
//
//	// Package-level (returns Query[string], fully typed):
//	query.Select(q, func(n, _ int) string { return strconv.Itoa(n) })
//
// The same applies to operators that constrain the element type:
// [Distinct] and friends need comparable elements, the numeric aggregates
// ([Sum], [Average], …) need [Number] elements, and [Min]/[Max] need
// ordered ones. Their method counterparts, where they exist, take explicit
// selector or comparison functions instead.
//
// # Single-pass and buffering operators
//
// Where, Select, Take, Skip and the other transform stages hold bounded
// state and stream. Sorting, grouping, reversal, set algebra, joins, and
// trailing windows (TakeLast, SkipLast) are buffering operators: they
// drain some or all of their upstream on the first advancement and hold an
// auxiliary collection for the traversal. Chaining stays cheap either way;
// the look-ahead work happens only when a terminal runs.
//
// # Errors
//
// Terminals that can fail return sentinel errors ([ErrEmptySequence],
// [ErrNoMatch], [ErrMultipleElements], [ErrIndexOutOfRange]) matchable
// with errors.Is; OrDefault variants substitute the zero value instead.
// [Cast] is the exception: a failed element assertion panics with a
// [*CastError], mirroring Go's single-return type assertion, because cast
// failures are programming errors that may surface inside error-less
// terminals such as Count. [OfType] filters instead of failing.
//
// # Macros (runtime extension)
//
// Register named pipeline transformations via [RegisterMacro] and apply
// them with [Query.Macro]:
//
//	query.RegisterMacro("evens", func(q any, _ ...any) any {
//	    return q.(query.Query[int]).Where(func(n, _ int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := query.Of(1, 2, 3, 4).Macro("evens")
package query
