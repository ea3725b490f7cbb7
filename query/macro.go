package query

import (
	"fmt"
	"sync"
)

// MacroFunc is the function signature for a registered macro.
//
// The query is passed as an any (interface{}) so that macros can be
// registered once and applied to any Query[T] instantiation. Type-assert
// inside the macro to the concrete Query[YourType]. Applying a macro is
// composition, not evaluation: a macro builds a new recipe and nothing
// runs until a terminal operator does.
type MacroFunc func(query any, args ...any) any

// macroRegistry is the package-level, goroutine-safe macro store. It is
// the only shared mutable state in the package; pipelines themselves are
// single-threaded.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry. If a macro with
// that name already exists it is replaced. Safe to call from multiple
// goroutines; intended for program initialization.
//
// Example – register a macro that keeps only even integers:
//
//	query.RegisterMacro("evens", func(q any, _ ...any) any {
//	    return q.(query.Query[int]).Where(func(n, _ int) bool { return n%2 == 0 })
//	})
//
//	q := query.Of(1, 2, 3, 4, 5)
//	evens, _ := q.Macro("evens") // Query[int] yielding 2, 4
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes all registered macros. Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro applies the named macro to the supplied query and args.
// Returns (nil, ErrMacroNotFound) if no macro is registered under name.
func CallMacro(name string, query any, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(query, args...), nil
}

// Macro applies the named registered macro to q, forwarding args. This is
// a convenience wrapper around the package-level [CallMacro].
func (q Query[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, q, args...)
}
