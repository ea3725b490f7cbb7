package query

// Query is a lazily-evaluated sequence of T rooted in a borrowed buffer.
//
// A Query is a recipe, not a cursor: it stores a factory that builds a
// fresh stage chain for every traversal. Chaining methods never mutate the
// receiver — they return a new Query wrapping the old recipe — and nothing
// reads the underlying buffer until a terminal operator (ToSlice, Count,
// First, Each, …) drives the pipeline. Because state lives in the per-
// traversal stages, copying a Query is safe and cheap, and every copy
// restarts iteration from the beginning.
//
// The zero value is an empty query.
//
// Queries are not safe for concurrent use while a terminal operator is
// running; see the package documentation.
type Query[T any] struct {
	source func() Stage[T]
}

// recipe returns the stage factory, substituting an empty source for the
// zero value.
func (q Query[T]) recipe() func() Stage[T] {
	if q.source == nil {
		return func() Stage[T] { return &sourceStage[T]{} }
	}
	return q.source
}

// Stage builds a fresh stage chain for one manual traversal. Most callers
// should use terminal operators instead; Stage exists for authors of
// custom operators, who wrap it from inside a [New] recipe:
//
//	func Dedupe(q query.Query[int]) query.Query[int] {
//	    return query.New(func() query.Stage[int] {
//	        return &dedupeStage{src: q.Stage()} // fresh upstream per traversal
//	    })
//	}
func (q Query[T]) Stage() Stage[T] {
	return q.recipe()()
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Where yields only the elements for which fn returns true. The second
// argument to fn is the element's 0-based position in the upstream
// sequence.
func (q Query[T]) Where(fn func(item T, index int) bool) Query[T] {
	src := q.recipe()
	return New(func() Stage[T] { return &whereStage[T]{src: src(), fn: fn} })
}

// Reject yields only the elements for which fn returns false — the
// complement of [Query.Where].
func (q Query[T]) Reject(fn func(item T, index int) bool) Query[T] {
	return q.Where(func(item T, index int) bool { return !fn(item, index) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection
// ─────────────────────────────────────────────────────────────────────────────

// Select transforms each element with fn. Go methods cannot introduce new
// type parameters, so this convenience form yields Query[any]; use the
// package-level [Select] for a fully typed projection. The second argument
// to fn is the element's 0-based upstream position.
func (q Query[T]) Select(fn func(item T, index int) any) Query[any] {
	src := q.recipe()
	return New(func() Stage[any] {
		return &selectStage[T, any]{src: src(), fn: fn}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Windowing
// ─────────────────────────────────────────────────────────────────────────────

// Take yields at most n leading elements, then stops advancing the
// upstream. n <= 0 yields nothing.
func (q Query[T]) Take(n int) Query[T] {
	src := q.recipe()
	return New(func() Stage[T] { return &takeStage[T]{src: src(), n: n} })
}

// Skip discards the first n elements and yields the rest. n <= 0 yields
// everything.
func (q Query[T]) Skip(n int) Query[T] {
	src := q.recipe()
	return New(func() Stage[T] { return &skipStage[T]{src: src(), n: n} })
}

// TakeWhile yields leading elements while fn returns true. The first
// failure exhausts the query permanently: later elements that would
// satisfy fn never reappear. The second argument to fn is the element's
// 0-based upstream position.
func (q Query[T]) TakeWhile(fn func(item T, index int) bool) Query[T] {
	src := q.recipe()
	return New(func() Stage[T] { return &takeWhileStage[T]{src: src(), fn: fn} })
}

// SkipWhile discards leading elements while fn returns true, then yields
// every remaining element unconditionally — including ones fn would match
// again. The second argument to fn is the element's 0-based upstream
// position.
func (q Query[T]) SkipWhile(fn func(item T, index int) bool) Query[T] {
	src := q.recipe()
	return New(func() Stage[T] { return &skipWhileStage[T]{src: src(), fn: fn} })
}

// TakeLast yields the trailing n elements, buffering at most n elements in
// a bounded ring. Nothing is produced until the upstream is exhausted.
// n <= 0 yields nothing.
func (q Query[T]) TakeLast(n int) Query[T] {
	src := q.recipe()
	return New(func() Stage[T] { return &takeLastStage[T]{src: src(), n: n} })
}

// SkipLast yields all but the trailing n elements, buffering at most n
// elements in a bounded ring. Elements are produced with a delay of n.
// n <= 0 yields everything.
func (q Query[T]) SkipLast(n int) Query[T] {
	src := q.recipe()
	return New(func() Stage[T] { return &skipLastStage[T]{src: src(), n: n} })
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural combination
// ─────────────────────────────────────────────────────────────────────────────

// Prepend yields items before the query's own elements. The variadic slice
// is borrowed: it must stay alive and unmodified while the query is in use.
func (q Query[T]) Prepend(items ...T) Query[T] {
	src := q.recipe()
	extra := FromSlice(items).recipe()
	return New(func() Stage[T] {
		return &concatStage[T]{first: extra(), second: src()}
	})
}

// Append yields items after the query's own elements are exhausted. The
// variadic slice is borrowed, as with [Query.Prepend].
func (q Query[T]) Append(items ...T) Query[T] {
	src := q.recipe()
	extra := FromSlice(items).recipe()
	return New(func() Stage[T] {
		return &concatStage[T]{first: src(), second: extra()}
	})
}

// Concat yields this query's elements followed by other's. The second
// sequence is not touched until the first is exhausted.
func (q Query[T]) Concat(other Query[T]) Query[T] {
	src := q.recipe()
	second := other.recipe()
	return New(func() Stage[T] {
		return &concatStage[T]{first: src(), second: second()}
	})
}

// DefaultIfEmpty substitutes a single fallback element when the query
// produces nothing: fallback[0] if given, the zero value of T otherwise.
// Extra fallbacks are ignored. A non-empty query passes through untouched.
func (q Query[T]) DefaultIfEmpty(fallback ...T) Query[T] {
	src := q.recipe()
	var def T
	if len(fallback) > 0 {
		def = fallback[0]
	}
	return New(func() Stage[T] {
		return &defaultIfEmptyStage[T]{src: src(), fallback: def}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Set algebra
//
// The By variants take a key selector and are methods; natural-equality
// variants constrained to comparable element types are package-level
// functions ([Distinct], [Union], [Except], [Intersect]). Keys returned by
// a selector must be valid Go map keys. All four operators yield each key
// at most once per traversal.
// ─────────────────────────────────────────────────────────────────────────────

// DistinctBy yields an element the first time its key is seen, skipping
// later elements with an already-seen key. The key set is created lazily
// on first advancement.
func (q Query[T]) DistinctBy(key func(T) any) Query[T] {
	src := q.recipe()
	return New(func() Stage[T] { return &distinctStage[T]{src: src(), key: key} })
}

// UnionBy concatenates other after this query and yields each key's first
// carrier exactly once, regardless of which sequence it came from.
func (q Query[T]) UnionBy(other Query[T], key func(T) any) Query[T] {
	return q.Concat(other).DistinctBy(key)
}

// ExceptBy yields elements whose key does not occur in other. The
// exclusion sequence is materialized in full on first advancement; output
// is deduplicated by key.
func (q Query[T]) ExceptBy(other Query[T], key func(T) any) Query[T] {
	src := q.recipe()
	excluded := other.recipe()
	return New(func() Stage[T] {
		return &exceptStage[T]{src: src(), excluded: excluded, key: key}
	})
}

// IntersectBy yields elements whose key occurs in other. The inclusion
// sequence is materialized in full on first advancement; output is
// deduplicated by key.
func (q Query[T]) IntersectBy(other Query[T], key func(T) any) Query[T] {
	src := q.recipe()
	inner := other.recipe()
	return New(func() Stage[T] {
		return &intersectStage[T]{src: src(), other: inner, key: key}
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Reordering
// ─────────────────────────────────────────────────────────────────────────────

// Reverse yields the elements in reverse order. The upstream is drained
// into a LIFO buffer on first advancement.
func (q Query[T]) Reverse() Query[T] {
	src := q.recipe()
	return New(func() Stage[T] { return &reverseStage[T]{src: src()} })
}

// ─────────────────────────────────────────────────────────────────────────────
// Composition helpers
// ─────────────────────────────────────────────────────────────────────────────

// Tap invokes fn on every element as it flows past, yielding the element
// unchanged. Useful for tracing a pipeline without disturbing it.
func (q Query[T]) Tap(fn func(T)) Query[T] {
	src := q.recipe()
	return New(func() Stage[T] { return &tapStage[T]{src: src(), fn: fn} })
}

// When applies fn to the query when cond holds, and returns the query
// unchanged otherwise. Composition-time branching; nothing is evaluated.
func (q Query[T]) When(cond bool, fn func(Query[T]) Query[T]) Query[T] {
	if cond {
		return fn(q)
	}
	return q
}

// Unless is the complement of [Query.When]: fn is applied when cond is
// false.
func (q Query[T]) Unless(cond bool, fn func(Query[T]) Query[T]) Query[T] {
	return q.When(!cond, fn)
}
