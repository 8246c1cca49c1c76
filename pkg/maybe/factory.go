package maybe

import "github.com/ib-77/possibly/pkg/maybe/trace"

const (
	labelMaybe   = "Maybe"
	labelPresent = "Present"
	labelAbsent  = "Absent"
)

// Of wraps v. A nil v or an Absent becomes Absent, a Present is unwrapped
// one level when its value fits T.
func Of[T any](v T) Maybe[T] {
	return wrap(v, labelMaybe, trace.Trace{})
}

// Present is Of with a different trace label.
func Present[T any](v T) Maybe[T] {
	return wrap(v, labelPresent, trace.Trace{})
}

func Absent[T any]() Maybe[T] {
	return absent[T](labelAbsent, trace.Trace{})
}

// Wrap is Of for dynamically typed values.
func Wrap(v any) Maybe[any] {
	return wrap(v, labelMaybe, trace.Trace{})
}

// Flatten collapses a statically nested Maybe. The inner instance is
// returned as is.
func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	if !m.present {
		return Maybe[T]{trace: m.trace}
	}
	return m.value
}

// ToAny widens the value type, keeping variant and trace.
func ToAny[T any](m Maybe[T]) Maybe[any] {
	return Maybe[any]{value: m.value, present: m.present, trace: m.trace}
}

// Cast narrows a Maybe[any]. It fails when a present value is not a T.
func Cast[T any](m Maybe[any]) (Maybe[T], bool) {
	if !m.present {
		return Maybe[T]{trace: m.trace}, true
	}
	v, ok := m.value.(T)
	if !ok {
		return Maybe[T]{}, false
	}
	return Maybe[T]{value: v, present: true, trace: m.trace}, true
}

// wrap is the single place where the variant of a new instance is decided.
// The new instance's trace is parent plus an entry for label.
func wrap[T any](v T, label string, parent trace.Trace) Maybe[T] {
	raw := any(v)
	if IsNil(raw) {
		return absent[T](label, parent)
	}

	if d, ok := raw.(dynamic); ok {
		inner, present := d.anyValue()
		if !present {
			return absent[T](label, parent)
		}
		if unwrapped, ok := inner.(T); ok {
			return presentOf(unwrapped, label, parent)
		}
	}

	return presentOf(v, label, parent)
}

func presentOf[T any](v T, label string, parent trace.Trace) Maybe[T] {
	return Maybe[T]{
		value:   v,
		present: true,
		trace:   parent.Append(label, trace.PresentSnapshot(v)),
	}
}

func absent[T any](label string, parent trace.Trace) Maybe[T] {
	return Maybe[T]{trace: parent.Append(label, trace.AbsentSnapshot)}
}

// relabel pushes an existing instance back through the factory under a new
// label, starting a fresh chain.
func relabel[T any](m Maybe[T], label string) Maybe[T] {
	if !m.present {
		return absent[T](label, trace.Trace{})
	}
	return wrap(m.value, label, trace.Trace{})
}
