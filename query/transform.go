package query

import "reflect"

// Transform stages stream: each Next advances the upstream only as far as
// the next produced element requires, and per-stage state is bounded by
// the operator's parameters, never by the input length. Operators that
// must exhaust the upstream before their first output live in buffered.go.

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & projection
// ─────────────────────────────────────────────────────────────────────────────

type whereStage[T any] struct {
	src Stage[T]
	fn  func(T, int) bool
	idx int
}

func (s *whereStage[T]) Next() bool {
	for s.src.Next() {
		i := s.idx
		s.idx++
		if s.fn(s.src.Value(), i) {
			return true
		}
	}
	return false
}

func (s *whereStage[T]) Value() T { return s.src.Value() }

type selectStage[I, O any] struct {
	src Stage[I]
	fn  func(I, int) O
	idx int
	cur O
}

func (s *selectStage[I, O]) Next() bool {
	if !s.src.Next() {
		return false
	}
	s.cur = s.fn(s.src.Value(), s.idx)
	s.idx++
	return true
}

func (s *selectStage[I, O]) Value() O { return s.cur }

// selectManyStage flattens the sub-sequence produced for each upstream
// element, walking it with an inner cursor. Empty sub-sequences are skipped.
type selectManyStage[I, O any] struct {
	src   Stage[I]
	fn    func(I, int) []O
	idx   int
	inner []O
	pos   int
}

func (s *selectManyStage[I, O]) Next() bool {
	for {
		if s.pos < len(s.inner) {
			s.pos++
			return true
		}
		if !s.src.Next() {
			return false
		}
		s.inner = s.fn(s.src.Value(), s.idx)
		s.idx++
		s.pos = 0
	}
}

func (s *selectManyStage[I, O]) Value() O { return s.inner[s.pos-1] }

// ─────────────────────────────────────────────────────────────────────────────
// Type narrowing
// ─────────────────────────────────────────────────────────────────────────────

// castStage asserts every element to O and panics with a *CastError on the
// first mismatch. ofTypeStage is the forgiving variant.
type castStage[I, O any] struct {
	src Stage[I]
	cur O
}

func (s *castStage[I, O]) Next() bool {
	if !s.src.Next() {
		return false
	}
	v := s.src.Value()
	o, ok := any(v).(O)
	if !ok {
		from := "<nil>"
		if t := reflect.TypeOf(v); t != nil {
			from = t.String()
		}
		panic(&CastError{
			From: from,
			To:   reflect.TypeOf((*O)(nil)).Elem().String(),
		})
	}
	s.cur = o
	return true
}

func (s *castStage[I, O]) Value() O { return s.cur }

type ofTypeStage[I, O any] struct {
	src Stage[I]
	cur O
}

func (s *ofTypeStage[I, O]) Next() bool {
	for s.src.Next() {
		if o, ok := any(s.src.Value()).(O); ok {
			s.cur = o
			return true
		}
	}
	return false
}

func (s *ofTypeStage[I, O]) Value() O { return s.cur }

// ─────────────────────────────────────────────────────────────────────────────
// Windowing by count and by predicate
// ─────────────────────────────────────────────────────────────────────────────

type takeStage[T any] struct {
	src  Stage[T]
	n    int
	seen int
}

func (s *takeStage[T]) Next() bool {
	// Once the quota is spent the upstream is never advanced again.
	if s.seen >= s.n {
		return false
	}
	if !s.src.Next() {
		return false
	}
	s.seen++
	return true
}

func (s *takeStage[T]) Value() T { return s.src.Value() }

type skipStage[T any] struct {
	src     Stage[T]
	n       int
	skipped bool
}

func (s *skipStage[T]) Next() bool {
	if !s.skipped {
		s.skipped = true
		for i := 0; i < s.n; i++ {
			if !s.src.Next() {
				return false
			}
		}
	}
	return s.src.Next()
}

func (s *skipStage[T]) Value() T { return s.src.Value() }

// takeWhileStage exhausts permanently on the first predicate failure: the
// failing element is discarded and the upstream is never advanced again,
// so later elements that would satisfy the predicate cannot reappear.
type takeWhileStage[T any] struct {
	src  Stage[T]
	fn   func(T, int) bool
	idx  int
	done bool
}

func (s *takeWhileStage[T]) Next() bool {
	if s.done {
		return false
	}
	if !s.src.Next() {
		s.done = true
		return false
	}
	i := s.idx
	s.idx++
	if !s.fn(s.src.Value(), i) {
		s.done = true
		return false
	}
	return true
}

func (s *takeWhileStage[T]) Value() T { return s.src.Value() }

// skipWhileStage drops leading elements while the predicate holds, then
// yields everything else unconditionally — including elements that would
// have matched the predicate again.
type skipWhileStage[T any] struct {
	src     Stage[T]
	fn      func(T, int) bool
	idx     int
	passing bool
}

func (s *skipWhileStage[T]) Next() bool {
	if s.passing {
		return s.src.Next()
	}
	for s.src.Next() {
		i := s.idx
		s.idx++
		if !s.fn(s.src.Value(), i) {
			s.passing = true
			return true
		}
	}
	return false
}

func (s *skipWhileStage[T]) Value() T { return s.src.Value() }

// ─────────────────────────────────────────────────────────────────────────────
// Structural combination
// ─────────────────────────────────────────────────────────────────────────────

type concatStage[T any] struct {
	first    Stage[T]
	second   Stage[T]
	onSecond bool
}

func (s *concatStage[T]) Next() bool {
	if !s.onSecond {
		if s.first.Next() {
			return true
		}
		s.onSecond = true
	}
	return s.second.Next()
}

func (s *concatStage[T]) Value() T {
	if s.onSecond {
		return s.second.Value()
	}
	return s.first.Value()
}

// defaultIfEmptyStage substitutes exactly one fallback element when the
// upstream turns out to be empty, and is a pass-through otherwise.
type defaultIfEmptyStage[T any] struct {
	src         Stage[T]
	fallback    T
	started     bool
	substituted bool
	done        bool
}

func (s *defaultIfEmptyStage[T]) Next() bool {
	if s.done {
		return false
	}
	if !s.started {
		s.started = true
		if s.src.Next() {
			return true
		}
		s.substituted = true
		return true
	}
	if s.substituted {
		s.done = true
		return false
	}
	return s.src.Next()
}

func (s *defaultIfEmptyStage[T]) Value() T {
	if s.substituted {
		return s.fallback
	}
	return s.src.Value()
}

// ─────────────────────────────────────────────────────────────────────────────
// Pass-through side effects, pairing, chunking
// ─────────────────────────────────────────────────────────────────────────────

type tapStage[T any] struct {
	src Stage[T]
	fn  func(T)
}

func (s *tapStage[T]) Next() bool {
	if !s.src.Next() {
		return false
	}
	s.fn(s.src.Value())
	return true
}

func (s *tapStage[T]) Value() T { return s.src.Value() }

// zipStage pairs two upstreams positionally and stops at the shorter one.
// When the first upstream is exhausted the second is not advanced further.
type zipStage[A, B any] struct {
	a   Stage[A]
	b   Stage[B]
	cur Pair[A, B]
}

func (s *zipStage[A, B]) Next() bool {
	if !s.a.Next() {
		return false
	}
	if !s.b.Next() {
		return false
	}
	s.cur = Pair[A, B]{First: s.a.Value(), Second: s.b.Value()}
	return true
}

func (s *zipStage[A, B]) Value() Pair[A, B] { return s.cur }

// chunkStage groups consecutive elements into slices of up to size
// elements; the final chunk may be shorter. Each chunk is freshly
// allocated and owned by the consumer.
type chunkStage[T any] struct {
	src  Stage[T]
	size int
	cur  []T
}

func (s *chunkStage[T]) Next() bool {
	if s.size <= 0 {
		return false
	}
	chunk := make([]T, 0, s.size)
	for len(chunk) < s.size && s.src.Next() {
		chunk = append(chunk, s.src.Value())
	}
	if len(chunk) == 0 {
		return false
	}
	s.cur = chunk
	return true
}

func (s *chunkStage[T]) Value() []T { return s.cur }

var (
	_ Stage[int]            = (*whereStage[int])(nil)
	_ Stage[string]         = (*selectStage[int, string])(nil)
	_ Stage[string]         = (*selectManyStage[int, string])(nil)
	_ Stage[int]            = (*castStage[any, int])(nil)
	_ Stage[int]            = (*ofTypeStage[any, int])(nil)
	_ Stage[int]            = (*takeStage[int])(nil)
	_ Stage[int]            = (*skipStage[int])(nil)
	_ Stage[int]            = (*takeWhileStage[int])(nil)
	_ Stage[int]            = (*skipWhileStage[int])(nil)
	_ Stage[int]            = (*concatStage[int])(nil)
	_ Stage[int]            = (*defaultIfEmptyStage[int])(nil)
	_ Stage[int]            = (*tapStage[int])(nil)
	_ Stage[Pair[int, int]] = (*zipStage[int, int])(nil)
	_ Stage[[]int]          = (*chunkStage[int])(nil)
)
