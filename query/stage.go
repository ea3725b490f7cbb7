package query

import "github.com/hasbyte1/go-view-query/view"

// Stage is the pull contract implemented by every pipeline operator.
//
// A stage starts before its first element. Next advances it, reporting
// whether another element was produced; Value returns the element produced
// by the most recent successful Next. Once Next has returned false the
// stage is exhausted: further Next calls keep returning false and must not
// advance the upstream again. Value is unspecified before the first Next
// and after exhaustion.
//
// Stages hold per-traversal mutable state and are never shared: every
// terminal operator builds a fresh chain from the handle's recipe. Custom
// operators can participate by wrapping a recipe with [New].
type Stage[T any] interface {
	// Next advances the stage, reporting whether a next element exists.
	Next() bool

	// Value returns the current element.
	Value() T
}

// sourceStage reads elements straight out of a borrowed buffer by position.
type sourceStage[T any] struct {
	buf    view.View[T]
	cursor int
	cur    T
}

func (s *sourceStage[T]) Next() bool {
	if s.cursor >= s.buf.Len() {
		return false
	}
	s.cur = s.buf.At(s.cursor)
	s.cursor++
	return true
}

func (s *sourceStage[T]) Value() T { return s.cur }

var _ Stage[int] = (*sourceStage[int])(nil)

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// From roots a query on a borrowed buffer. The buffer is read lazily: no
// element is touched until a terminal operator drives the pipeline.
func From[T any](buf view.View[T]) Query[T] {
	return New(func() Stage[T] { return &sourceStage[T]{buf: buf} })
}

// FromSlice roots a query on items, borrowing the slice as a [view.View].
// The caller keeps ownership: the slice must stay alive and unmodified
// while the query is in use.
func FromSlice[T any](items []T) Query[T] {
	return From(view.Of(items))
}

// Of roots a query on the given elements. Shorthand for FromSlice over the
// variadic slice.
func Of[T any](items ...T) Query[T] {
	return FromSlice(items)
}

// Empty returns a query that yields no elements.
func Empty[T any]() Query[T] {
	return From(view.Empty[T]())
}

// New builds a query from a stage recipe. Each traversal invokes recipe
// once to obtain a fresh stage chain, so the returned query has the same
// copy-and-restart semantics as every other handle. New is the extension
// point for operators not provided by this package.
func New[T any](recipe func() Stage[T]) Query[T] {
	return Query[T]{source: recipe}
}
