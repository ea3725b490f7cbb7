package query

import "golang.org/x/exp/constraints"

// OrderedQuery is a Query whose elements are sorted under a chain of
// three-way comparisons. It embeds the sorted Query[T] — every chaining
// and terminal operator is available — and additionally supports
// [OrderedQuery.ThenBy] / [OrderedQuery.ThenByDescending], which append a
// tie-breaking comparison instead of re-sorting the sorted output.
//
// Sorting is stable throughout: elements whose composite keys are fully
// equal keep their relative upstream order.
type OrderedQuery[T any] struct {
	Query[T]
	input Query[T]
	cmps  []func(a, b T) int
}

func newOrderedQuery[T any](input Query[T], cmps []func(a, b T) int) OrderedQuery[T] {
	src := input.recipe()
	composite := func(a, b T) int {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
	return OrderedQuery[T]{
		Query: New(func() Stage[T] {
			return &sortStage[T]{src: src(), cmp: composite}
		}),
		input: input,
		cmps:  cmps,
	}
}

// OrderBy sorts the elements ascending under cmp, a three-way comparison
// returning a negative value when a orders before b, zero when they are
// equivalent, and a positive value when a orders after b. The sort is
// stable and the upstream is drained on first advancement.
//
// For elements ordered by a key, the package-level [OrderByKey] avoids
// writing the comparison by hand.
func (q Query[T]) OrderBy(cmp func(a, b T) int) OrderedQuery[T] {
	return newOrderedQuery(q, []func(a, b T) int{cmp})
}

// OrderByDescending sorts the elements descending under cmp. Stability is
// preserved: equivalent elements keep their upstream order rather than
// being reversed.
func (q Query[T]) OrderByDescending(cmp func(a, b T) int) OrderedQuery[T] {
	return newOrderedQuery(q, []func(a, b T) int{descending(cmp)})
}

// ThenBy appends an ascending tie-breaking comparison, consulted only when
// every earlier comparison in the chain reports equivalence.
func (q OrderedQuery[T]) ThenBy(cmp func(a, b T) int) OrderedQuery[T] {
	return newOrderedQuery(q.input, appendCmp(q.cmps, cmp))
}

// ThenByDescending appends a descending tie-breaking comparison.
func (q OrderedQuery[T]) ThenByDescending(cmp func(a, b T) int) OrderedQuery[T] {
	return newOrderedQuery(q.input, appendCmp(q.cmps, descending(cmp)))
}

// appendCmp copies before appending so that sibling OrderedQuery values
// built from the same prefix never share a backing array.
func appendCmp[T any](cmps []func(a, b T) int, cmp func(a, b T) int) []func(a, b T) int {
	next := make([]func(a, b T) int, len(cmps), len(cmps)+1)
	copy(next, cmps)
	return append(next, cmp)
}

func descending[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return -cmp(a, b) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Key-selector sugar
// ─────────────────────────────────────────────────────────────────────────────

// OrderByKey sorts ascending by a naturally ordered key.
func OrderByKey[T any, K constraints.Ordered](q Query[T], key func(T) K) OrderedQuery[T] {
	return q.OrderBy(compareKeys(key))
}

// OrderByKeyDescending sorts descending by a naturally ordered key.
func OrderByKeyDescending[T any, K constraints.Ordered](q Query[T], key func(T) K) OrderedQuery[T] {
	return q.OrderByDescending(compareKeys(key))
}

// ThenByKey appends an ascending tie-break by a naturally ordered key.
func ThenByKey[T any, K constraints.Ordered](q OrderedQuery[T], key func(T) K) OrderedQuery[T] {
	return q.ThenBy(compareKeys(key))
}

// ThenByKeyDescending appends a descending tie-break by a naturally
// ordered key.
func ThenByKeyDescending[T any, K constraints.Ordered](q OrderedQuery[T], key func(T) K) OrderedQuery[T] {
	return q.ThenByDescending(compareKeys(key))
}

func compareKeys[T any, K constraints.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	}
}
