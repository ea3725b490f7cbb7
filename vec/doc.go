// Package vec provides standalone, single-pass helper functions over
// borrowed buffers ([view.View]) — the non-composable companions to the
// query package.
//
// Every helper walks the view front to back exactly once, allocates
// nothing beyond its return value, and returns immediately when its result
// is decided:
//
//	v := view.Of([]int{3, 1, 4, 1, 5})
//
//	total := vec.Sum(v)                                    // 14
//	first, ok := vec.First(v, func(n int) bool { return n > 3 }) // 4, true
//	count := vec.Count(v, func(n int) bool { return n == 1 })   // 2
//
// Reach for the query package instead when operators need to be chained,
// reordered, or evaluated lazily; these helpers are the fast path for the
// one-shot cases.
package vec
