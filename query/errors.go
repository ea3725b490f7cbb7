package query

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by terminal operators. Wrap-aware: match with
// errors.Is.
var (
	// ErrEmptySequence is returned by unconditional First / Last / Single
	// and by seedless Aggregate when the pipeline produced no elements.
	ErrEmptySequence = errors.New("query: sequence contains no elements")

	// ErrNoMatch is returned by predicate-qualified First / Last / Single
	// when no element satisfies the predicate.
	ErrNoMatch = errors.New("query: no element satisfies the condition")

	// ErrMultipleElements is returned by Single and SingleOrDefault when
	// more than one (qualifying) element exists.
	ErrMultipleElements = errors.New("query: sequence contains more than one matching element")

	// ErrIndexOutOfRange is returned by ElementAt and ElementAtFromEnd when
	// the requested position lies outside the sequence.
	ErrIndexOutOfRange = errors.New("query: index out of range")

	// ErrInvalidCast is the panic cause raised by Cast when an element's
	// dynamic type cannot be asserted to the target type. It is carried by
	// *CastError; use OfType to skip mismatches instead of failing.
	ErrInvalidCast = errors.New("query: element cannot be cast to the target type")

	// ErrMacroNotFound is returned when an unregistered macro name is
	// applied.
	ErrMacroNotFound = errors.New("query: macro not found")
)

// CastError reports the element that made [Cast] fail. Cast panics with a
// *CastError; recover handlers can match it against [ErrInvalidCast] with
// errors.Is, or inspect the types directly with errors.As.
type CastError struct {
	// From is the dynamic type of the offending element.
	From string
	// To is the requested target type.
	To string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("%s: %s is not %s", ErrInvalidCast, e.From, e.To)
}

// Unwrap lets errors.Is(err, ErrInvalidCast) succeed on a *CastError.
func (e *CastError) Unwrap() error {
	return ErrInvalidCast
}
