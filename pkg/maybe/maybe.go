package maybe

import (
	"reflect"

	"github.com/ib-77/possibly/pkg/maybe/trace"
)

var _ ValueProvider[int] = Maybe[int]{}

// Maybe holds either a value (Present) or nothing (Absent) together with the
// trace of operations that produced it. The zero value is Absent.
type Maybe[T any] struct {
	value   T
	present bool
	trace   trace.Trace
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

func (m Maybe[T]) IsAbsent() bool {
	return !m.present
}

func (m Maybe[T]) Trace() trace.Trace {
	return m.trace
}

// Equal compares variants and values. Traces are ignored.
func (m Maybe[T]) Equal(other Maybe[T]) bool {
	if m.present != other.present {
		return false
	}
	return !m.present || reflect.DeepEqual(m.value, other.value)
}

// String renders "Present(v)" or "Absent".
func (m Maybe[T]) String() string {
	if m.present {
		return trace.PresentSnapshot(m.value)
	}
	return trace.AbsentSnapshot
}

func (m Maybe[T]) anyValue() (any, bool) {
	if !m.present {
		return nil, false
	}
	return m.value, true
}

// diagnostics is the trace used in error messages. A zero value Absent has
// no trace of its own, so it gets a single construction entry.
func (m Maybe[T]) diagnostics() trace.Trace {
	if m.trace.IsEmpty() {
		return trace.New(labelAbsent, m.String())
	}
	return m.trace
}
