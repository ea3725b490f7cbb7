package query

import (
	"sort"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/queues/circularbuffer"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Buffering stages must look ahead: they drain some or all of their input
// before producing output, and own an auxiliary collection for the
// duration of one traversal. Every auxiliary collection here is created
// lazily on the first Next call, never at pipeline-construction time, so
// building a query stays free of look-ahead work.

// ─────────────────────────────────────────────────────────────────────────────
// Set algebra
//
// All four operators treat the key set as the identity of an element and
// deduplicate their output: a key is yielded at most once per traversal.
// Keys are produced by caller-supplied selectors and must be valid Go map
// keys; they are stored boxed in a gods hash set.
// ─────────────────────────────────────────────────────────────────────────────

type distinctStage[T any] struct {
	src  Stage[T]
	key  func(T) any
	seen *hashset.Set
}

func (s *distinctStage[T]) Next() bool {
	if s.seen == nil {
		s.seen = hashset.New()
	}
	for s.src.Next() {
		k := s.key(s.src.Value())
		if s.seen.Contains(k) {
			continue
		}
		s.seen.Add(k)
		return true
	}
	return false
}

func (s *distinctStage[T]) Value() T { return s.src.Value() }

// exceptStage materializes the exclusion sequence's keys in full on first
// advancement, then streams upstream elements whose key is absent. Yielded
// keys join the set, which is what deduplicates the output.
type exceptStage[T any] struct {
	src      Stage[T]
	excluded func() Stage[T]
	key      func(T) any
	seen     *hashset.Set
}

func (s *exceptStage[T]) Next() bool {
	if s.seen == nil {
		s.seen = hashset.New()
		ex := s.excluded()
		for ex.Next() {
			s.seen.Add(s.key(ex.Value()))
		}
	}
	for s.src.Next() {
		k := s.key(s.src.Value())
		if s.seen.Contains(k) {
			continue
		}
		s.seen.Add(k)
		return true
	}
	return false
}

func (s *exceptStage[T]) Value() T { return s.src.Value() }

// intersectStage materializes the inclusion sequence's keys in full on
// first advancement. Removing a key as it is yielded both deduplicates the
// output and keeps the set shrinking.
type intersectStage[T any] struct {
	src     Stage[T]
	other   func() Stage[T]
	key     func(T) any
	allowed *hashset.Set
}

func (s *intersectStage[T]) Next() bool {
	if s.allowed == nil {
		s.allowed = hashset.New()
		in := s.other()
		for in.Next() {
			s.allowed.Add(s.key(in.Value()))
		}
	}
	for s.src.Next() {
		k := s.key(s.src.Value())
		if s.allowed.Contains(k) {
			s.allowed.Remove(k)
			return true
		}
	}
	return false
}

func (s *intersectStage[T]) Value() T { return s.src.Value() }

// ─────────────────────────────────────────────────────────────────────────────
// Reversal & trailing windows
// ─────────────────────────────────────────────────────────────────────────────

// reverseStage drains the upstream into a LIFO stack, then yields in pop
// order.
type reverseStage[T any] struct {
	src    Stage[T]
	stack  *arraystack.Stack
	loaded bool
	cur    T
}

func (s *reverseStage[T]) Next() bool {
	if !s.loaded {
		s.loaded = true
		s.stack = arraystack.New()
		for s.src.Next() {
			s.stack.Push(s.src.Value())
		}
	}
	v, ok := s.stack.Pop()
	if !ok {
		return false
	}
	s.cur = v.(T)
	return true
}

func (s *reverseStage[T]) Value() T { return s.cur }

// skipLastStage withholds the most recent n elements in a bounded ring,
// yielding the oldest buffered element once the ring would exceed n. The
// last n elements are still in the ring when the upstream exhausts and are
// simply dropped.
type skipLastStage[T any] struct {
	src  Stage[T]
	n    int
	ring *circularbuffer.Queue
	cur  T
}

func (s *skipLastStage[T]) Next() bool {
	if s.n <= 0 {
		return s.src.Next()
	}
	if s.ring == nil {
		s.ring = circularbuffer.New(s.n)
	}
	for s.src.Next() {
		if s.ring.Full() {
			old, _ := s.ring.Dequeue()
			s.ring.Enqueue(s.src.Value())
			s.cur = old.(T)
			return true
		}
		s.ring.Enqueue(s.src.Value())
	}
	return false
}

func (s *skipLastStage[T]) Value() T {
	if s.n <= 0 {
		return s.src.Value()
	}
	return s.cur
}

// takeLastStage defers all output until the upstream is exhausted; the
// ring overwrites its oldest entry while filling, so afterwards it holds
// exactly the trailing n elements in order.
type takeLastStage[T any] struct {
	src    Stage[T]
	n      int
	ring   *circularbuffer.Queue
	loaded bool
	cur    T
}

func (s *takeLastStage[T]) Next() bool {
	if s.n <= 0 {
		return false
	}
	if !s.loaded {
		s.loaded = true
		s.ring = circularbuffer.New(s.n)
		for s.src.Next() {
			s.ring.Enqueue(s.src.Value())
		}
	}
	v, ok := s.ring.Dequeue()
	if !ok {
		return false
	}
	s.cur = v.(T)
	return true
}

func (s *takeLastStage[T]) Value() T { return s.cur }

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// sortStage drains the upstream into a working slice on first advancement
// and stable-sorts it under a composite three-way comparison, so elements
// with fully-equal keys keep their upstream order.
type sortStage[T any] struct {
	src    Stage[T]
	cmp    func(a, b T) int
	buf    []T
	pos    int
	loaded bool
}

func (s *sortStage[T]) Next() bool {
	if !s.loaded {
		s.loaded = true
		for s.src.Next() {
			s.buf = append(s.buf, s.src.Value())
		}
		sort.SliceStable(s.buf, func(i, j int) bool {
			return s.cmp(s.buf[i], s.buf[j]) < 0
		})
	}
	if s.pos >= len(s.buf) {
		return false
	}
	s.pos++
	return true
}

func (s *sortStage[T]) Value() T { return s.buf[s.pos-1] }

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & joins
// ─────────────────────────────────────────────────────────────────────────────

// groupByStage drains the upstream on first advancement and partitions it
// by key. A linked hash map keeps the keys in order of first appearance;
// each partition keeps its members in upstream order.
type groupByStage[T any, K comparable] struct {
	src    Stage[T]
	key    func(T) K
	groups *linkedhashmap.Map
	keys   []any
	pos    int
	cur    Grouping[K, T]
}

func (s *groupByStage[T, K]) Next() bool {
	if s.groups == nil {
		s.groups = linkedhashmap.New()
		for s.src.Next() {
			item := s.src.Value()
			k := s.key(item)
			if members, ok := s.groups.Get(k); ok {
				s.groups.Put(k, append(members.([]T), item))
			} else {
				s.groups.Put(k, []T{item})
			}
		}
		s.keys = s.groups.Keys()
	}
	if s.pos >= len(s.keys) {
		return false
	}
	k := s.keys[s.pos].(K)
	members, _ := s.groups.Get(k)
	s.cur = Grouping[K, T]{Key: k, items: members.([]T)}
	s.pos++
	return true
}

func (s *groupByStage[T, K]) Value() Grouping[K, T] { return s.cur }

// joinStage materializes the inner sequence into a key → elements
// multi-map on first advancement, then streams the outer sequence: one
// result per matching inner element, in the inner sequence's order. Outer
// elements without matches contribute nothing.
type joinStage[O, I any, K comparable, R any] struct {
	outer    Stage[O]
	inner    func() Stage[I]
	outerKey func(O) K
	innerKey func(I) K
	sel      func(O, I) R

	lookup   map[K][]I
	curOuter O
	matches  []I
	pos      int
	cur      R
}

func (s *joinStage[O, I, K, R]) Next() bool {
	if s.lookup == nil {
		s.lookup = buildLookup(s.inner(), s.innerKey)
	}
	for {
		if s.pos < len(s.matches) {
			s.cur = s.sel(s.curOuter, s.matches[s.pos])
			s.pos++
			return true
		}
		if !s.outer.Next() {
			return false
		}
		s.curOuter = s.outer.Value()
		s.matches = s.lookup[s.outerKey(s.curOuter)]
		s.pos = 0
	}
}

func (s *joinStage[O, I, K, R]) Value() R { return s.cur }

// groupJoinStage yields exactly one result per outer element, pairing it
// with its (possibly empty) group of matching inner elements.
type groupJoinStage[O, I any, K comparable, R any] struct {
	outer    Stage[O]
	inner    func() Stage[I]
	outerKey func(O) K
	innerKey func(I) K
	sel      func(O, []I) R

	lookup map[K][]I
	cur    R
}

func (s *groupJoinStage[O, I, K, R]) Next() bool {
	if s.lookup == nil {
		s.lookup = buildLookup(s.inner(), s.innerKey)
	}
	if !s.outer.Next() {
		return false
	}
	o := s.outer.Value()
	s.cur = s.sel(o, s.lookup[s.outerKey(o)])
	return true
}

func (s *groupJoinStage[O, I, K, R]) Value() R { return s.cur }

func buildLookup[I any, K comparable](inner Stage[I], key func(I) K) map[K][]I {
	lookup := make(map[K][]I)
	for inner.Next() {
		v := inner.Value()
		k := key(v)
		lookup[k] = append(lookup[k], v)
	}
	return lookup
}

var (
	_ Stage[int]                = (*distinctStage[int])(nil)
	_ Stage[int]                = (*exceptStage[int])(nil)
	_ Stage[int]                = (*intersectStage[int])(nil)
	_ Stage[int]                = (*reverseStage[int])(nil)
	_ Stage[int]                = (*skipLastStage[int])(nil)
	_ Stage[int]                = (*takeLastStage[int])(nil)
	_ Stage[int]                = (*sortStage[int])(nil)
	_ Stage[Grouping[int, int]] = (*groupByStage[int, int])(nil)
	_ Stage[string]             = (*joinStage[int, int, int, string])(nil)
	_ Stage[string]             = (*groupJoinStage[int, int, int, string])(nil)
)
