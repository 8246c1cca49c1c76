package maybe

import "github.com/ib-77/possibly/pkg/maybe/trace"

// Variant is implemented by every Maybe regardless of its value type.
type Variant interface {
	// IsPresent returns true if a value is held
	IsPresent() bool
	// IsAbsent returns true if no value is held
	IsAbsent() bool
	// Trace returns the invocation trace
	Trace() trace.Trace
}

// ValueProvider extracts the value of a Maybe or reports its absence.
type ValueProvider[T any] interface {
	Variant
	// Get returns the value or a *ValueExpectedError
	Get() (T, error)
	// OrElse returns the value or def
	OrElse(def T) T
}

// dynamic gives untyped access to a Maybe of any value type. It is what the
// factory uses to flatten and what matching uses to inspect candidates.
type dynamic interface {
	Variant
	anyValue() (any, bool)
}
