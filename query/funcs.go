package query

import "golang.org/x/exp/constraints"

// Go generics do not allow methods to introduce new type parameters, so
// every operator that changes the element type — or constrains it beyond
// `any` — lives here as a package-level function taking the query as its
// first argument. Operators that keep the element type are methods on
// [Query].

// Number is the constraint required by the numeric aggregates: any integer
// or floating-point type. Use the *Of selector variants for element types
// outside the constraint.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed projection
// ─────────────────────────────────────────────────────────────────────────────

// Select lazily transforms each element of q with fn. The second argument
// to fn is the element's 0-based upstream position.
func Select[T, U any](q Query[T], fn func(item T, index int) U) Query[U] {
	src := q.recipe()
	return New(func() Stage[U] { return &selectStage[T, U]{src: src(), fn: fn} })
}

// SelectMany maps each element to a sub-sequence and flattens the results,
// walking each sub-sequence with an inner cursor. The second argument to
// fn is the element's 0-based upstream position. Returned slices are
// borrowed until the traversal moves past them.
func SelectMany[T, U any](q Query[T], fn func(item T, index int) []U) Query[U] {
	src := q.recipe()
	return New(func() Stage[U] { return &selectManyStage[T, U]{src: src(), fn: fn} })
}

// Flatten concatenates a query of slices into a query of their elements.
func Flatten[T any](q Query[[]T]) Query[T] {
	return SelectMany(q, func(items []T, _ int) []T { return items })
}

// Chunk groups consecutive elements into slices of up to size elements;
// the final chunk may be shorter. size <= 0 yields nothing.
func Chunk[T any](q Query[T], size int) Query[[]T] {
	src := q.recipe()
	return New(func() Stage[[]T] { return &chunkStage[T]{src: src(), size: size} })
}

// ─────────────────────────────────────────────────────────────────────────────
// Type narrowing
// ─────────────────────────────────────────────────────────────────────────────

// Cast asserts every element's dynamic type to U. The first element that
// fails the assertion panics with a [*CastError] (matching
// [ErrInvalidCast]) during the terminal operator that drives the pipeline,
// mirroring Go's single-return type assertion. Use [OfType] to skip
// mismatches instead of failing.
func Cast[U, T any](q Query[T]) Query[U] {
	src := q.recipe()
	return New(func() Stage[U] { return &castStage[T, U]{src: src()} })
}

// OfType yields the elements whose dynamic type is U, silently skipping
// the rest.
func OfType[U, T any](q Query[T]) Query[U] {
	src := q.recipe()
	return New(func() Stage[U] { return &ofTypeStage[T, U]{src: src()} })
}

// ─────────────────────────────────────────────────────────────────────────────
// Set algebra over naturally comparable elements
// ─────────────────────────────────────────────────────────────────────────────

// Distinct yields each element the first time it is seen, comparing
// elements by natural equality.
func Distinct[T comparable](q Query[T]) Query[T] {
	return q.DistinctBy(identityKey[T]())
}

// Union concatenates two queries and yields each element once, comparing
// by natural equality.
func Union[T comparable](q, other Query[T]) Query[T] {
	return q.UnionBy(other, identityKey[T]())
}

// Except yields the elements of q that do not occur in other, comparing by
// natural equality. Output is deduplicated.
func Except[T comparable](q, other Query[T]) Query[T] {
	return q.ExceptBy(other, identityKey[T]())
}

// Intersect yields the elements of q that also occur in other, comparing
// by natural equality. Output is deduplicated.
func Intersect[T comparable](q, other Query[T]) Query[T] {
	return q.IntersectBy(other, identityKey[T]())
}

func identityKey[T comparable]() func(T) any {
	return func(v T) any { return v }
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & joins
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy partitions q by key. The upstream is drained on first
// advancement; groups surface in order of first appearance of their key,
// and each group keeps its members in upstream order.
func GroupBy[T any, K comparable](q Query[T], key func(T) K) Query[Grouping[K, T]] {
	src := q.recipe()
	return New(func() Stage[Grouping[K, T]] {
		return &groupByStage[T, K]{src: src(), key: key}
	})
}

// Join correlates two sequences on matching keys (inner join): for every
// outer element, sel is applied once per inner element with the same key,
// in the inner sequence's order. Outer elements without matches contribute
// no results. The inner sequence is materialized into a multi-map on first
// advancement; the outer streams.
func Join[O, I any, K comparable, R any](
	outer Query[O],
	inner Query[I],
	outerKey func(O) K,
	innerKey func(I) K,
	sel func(O, I) R,
) Query[R] {
	outerSrc := outer.recipe()
	innerSrc := inner.recipe()
	return New(func() Stage[R] {
		return &joinStage[O, I, K, R]{
			outer:    outerSrc(),
			inner:    innerSrc,
			outerKey: outerKey,
			innerKey: innerKey,
			sel:      sel,
		}
	})
}

// GroupJoin correlates two sequences on matching keys, producing exactly
// one result per outer element: sel receives the outer element and its
// group of matching inner elements, which is nil when nothing matched.
func GroupJoin[O, I any, K comparable, R any](
	outer Query[O],
	inner Query[I],
	outerKey func(O) K,
	innerKey func(I) K,
	sel func(O, []I) R,
) Query[R] {
	outerSrc := outer.recipe()
	innerSrc := inner.recipe()
	return New(func() Stage[R] {
		return &groupJoinStage[O, I, K, R]{
			outer:    outerSrc(),
			inner:    innerSrc,
			outerKey: outerKey,
			innerKey: innerKey,
			sel:      sel,
		}
	})
}

// Zip pairs two queries positionally into [Pair] values, stopping at the
// shorter sequence.
func Zip[A, B any](a Query[A], b Query[B]) Query[Pair[A, B]] {
	aSrc := a.recipe()
	bSrc := b.recipe()
	return New(func() Stage[Pair[A, B]] {
		return &zipStage[A, B]{a: aSrc(), b: bSrc()}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Materializing terminals requiring extra type parameters
// ─────────────────────────────────────────────────────────────────────────────

// ToSet drives the pipeline and collects the distinct elements into a set.
func ToSet[T comparable](q Query[T]) map[T]struct{} {
	out := make(map[T]struct{})
	for s := q.Stage(); s.Next(); {
		out[s.Value()] = struct{}{}
	}
	return out
}

// ToMap drives the pipeline and builds a map from the key/value pairs
// produced by fn. When two elements map to the same key, the later one
// wins.
func ToMap[T any, K comparable, V any](q Query[T], fn func(T) (K, V)) map[K]V {
	out := make(map[K]V)
	for s := q.Stage(); s.Next(); {
		k, v := fn(s.Value())
		out[k] = v
	}
	return out
}

// Fold drives the pipeline, threading an accumulator seeded with seed
// through fn for every element. Unlike [Query.Aggregate] it cannot fail:
// an empty sequence folds to the seed.
func Fold[T, U any](q Query[T], seed U, fn func(acc U, item T) U) U {
	acc := seed
	for s := q.Stage(); s.Next(); {
		acc = fn(acc, s.Value())
	}
	return acc
}

// Contains drives the pipeline and reports whether value occurs in it,
// comparing by natural equality. Stops at the first match.
func Contains[T comparable](q Query[T], value T) bool {
	for s := q.Stage(); s.Next(); {
		if s.Value() == value {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Numeric & ordering aggregates
//
// Empty sequences are not an error here: sums are zero, averages are zero,
// and the min/max family reports ok=false. Only the positional terminals
// (First, Single, …) distinguish emptiness as a failure.
// ─────────────────────────────────────────────────────────────────────────────

// Sum drives the pipeline and adds the elements. The empty sum is zero.
func Sum[T Number](q Query[T]) T {
	var total T
	for s := q.Stage(); s.Next(); {
		total += s.Value()
	}
	return total
}

// SumOf drives the pipeline and adds the values projected by fn.
func SumOf[T any, N Number](q Query[T], fn func(T) N) N {
	var total N
	for s := q.Stage(); s.Next(); {
		total += fn(s.Value())
	}
	return total
}

// Average drives the pipeline and returns the arithmetic mean of the
// elements, or 0 for an empty sequence.
func Average[T Number](q Query[T]) float64 {
	var total float64
	n := 0
	for s := q.Stage(); s.Next(); {
		total += float64(s.Value())
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// AverageOf drives the pipeline and returns the arithmetic mean of the
// values projected by fn, or 0 for an empty sequence.
func AverageOf[T any, N Number](q Query[T], fn func(T) N) float64 {
	var total float64
	n := 0
	for s := q.Stage(); s.Next(); {
		total += float64(fn(s.Value()))
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// Min drives the pipeline and returns the smallest element under natural
// ordering. ok is false for an empty sequence.
func Min[T constraints.Ordered](q Query[T]) (min T, ok bool) {
	s := q.Stage()
	if !s.Next() {
		return min, false
	}
	min = s.Value()
	for s.Next() {
		if v := s.Value(); v < min {
			min = v
		}
	}
	return min, true
}

// Max drives the pipeline and returns the largest element under natural
// ordering. ok is false for an empty sequence.
func Max[T constraints.Ordered](q Query[T]) (max T, ok bool) {
	s := q.Stage()
	if !s.Next() {
		return max, false
	}
	max = s.Value()
	for s.Next() {
		if v := s.Value(); v > max {
			max = v
		}
	}
	return max, true
}

// MinOf drives the pipeline and returns the smallest key projected by fn.
// ok is false for an empty sequence.
func MinOf[T any, K constraints.Ordered](q Query[T], fn func(T) K) (min K, ok bool) {
	s := q.Stage()
	if !s.Next() {
		return min, false
	}
	min = fn(s.Value())
	for s.Next() {
		if k := fn(s.Value()); k < min {
			min = k
		}
	}
	return min, true
}

// MaxOf drives the pipeline and returns the largest key projected by fn.
// ok is false for an empty sequence.
func MaxOf[T any, K constraints.Ordered](q Query[T], fn func(T) K) (max K, ok bool) {
	s := q.Stage()
	if !s.Next() {
		return max, false
	}
	max = fn(s.Value())
	for s.Next() {
		if k := fn(s.Value()); k > max {
			max = k
		}
	}
	return max, true
}

// MinBy drives the pipeline and returns the element whose key is smallest;
// on ties the earliest such element wins. ok is false for an empty
// sequence.
func MinBy[T any, K constraints.Ordered](q Query[T], fn func(T) K) (item T, ok bool) {
	s := q.Stage()
	if !s.Next() {
		return item, false
	}
	item = s.Value()
	best := fn(item)
	for s.Next() {
		v := s.Value()
		if k := fn(v); k < best {
			item, best = v, k
		}
	}
	return item, true
}

// MaxBy drives the pipeline and returns the element whose key is largest;
// on ties the earliest such element wins. ok is false for an empty
// sequence.
func MaxBy[T any, K constraints.Ordered](q Query[T], fn func(T) K) (item T, ok bool) {
	s := q.Stage()
	if !s.Next() {
		return item, false
	}
	item = s.Value()
	best := fn(item)
	for s.Next() {
		v := s.Value()
		if k := fn(v); k > best {
			item, best = v, k
		}
	}
	return item, true
}
