package query

import "fmt"

// Pair holds two values of possibly different types. It is the element
// type produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Grouping is one partition produced by [GroupBy]: a key together with the
// elements that mapped to it, in their original upstream order.
type Grouping[K comparable, T any] struct {
	// Key is the value shared by every member of the group.
	Key K

	items []T
}

// Len returns the number of members in the group.
func (g Grouping[K, T]) Len() int { return len(g.items) }

// Values returns a copy of the group's members in upstream order.
func (g Grouping[K, T]) Values() []T {
	out := make([]T, len(g.items))
	copy(out, g.items)
	return out
}

// Query returns a query over the group's members, for further composition.
func (g Grouping[K, T]) Query() Query[T] {
	return FromSlice(g.items)
}

// String returns a human-readable representation: "key: [members]".
func (g Grouping[K, T]) String() string {
	return fmt.Sprintf("%v: %v", g.Key, g.items)
}
