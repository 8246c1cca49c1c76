package maybe

import (
	"github.com/ib-77/possibly/pkg/maybe/capability"
	"github.com/ib-77/possibly/pkg/maybe/trace"
)

// Forward applies op to the wrapped value using capability.Default.
//
// On a Present the result goes back through the factory and starts a fresh
// one entry trace. An operation the value does not support fails with a
// *capability.UnsupportedError; it is never turned into an Absent.
//
// On an Absent nothing is looked up: the result is an Absent whose trace is
// m's trace plus an entry for op.
func (m Maybe[T]) Forward(op capability.Op) (Maybe[any], error) {
	return m.ForwardWith(capability.Default, op)
}

// ForwardWith is Forward with an explicit registry.
func (m Maybe[T]) ForwardWith(reg *capability.Registry, op capability.Op) (Maybe[any], error) {
	label := op.Label()
	if !m.present {
		return absent[any](label, m.trace), nil
	}

	out, err := reg.Apply(m.value, op)
	if err != nil {
		return Maybe[any]{}, err
	}
	return wrap(out, label, trace.Trace{}), nil
}

// Call forwards a named operation, e.g. Call("slice", 1, 4).
func (m Maybe[T]) Call(name string, args ...any) (Maybe[any], error) {
	return m.Forward(capability.Call(name, args...))
}

// Index forwards a subscript, e.g. Index("hash").
func (m Maybe[T]) Index(keys ...any) (Maybe[any], error) {
	return m.Forward(capability.Index(keys...))
}
