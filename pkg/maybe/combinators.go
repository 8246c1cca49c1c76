package maybe

import "github.com/ib-77/possibly/pkg/maybe/trace"

const (
	labelMap     = "map"
	labelFlatMap = "flatMap"
	labelRecover = "recover"
	labelFilter  = "filter"
	labelSwitch  = "switch"
)

// Map applies f to a present value. An Absent is returned unchanged and f is
// not called.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	return Map(m, f)
}

// FlatMap applies f to a present value and flattens its result.
func (m Maybe[T]) FlatMap(f func(T) Maybe[T]) Maybe[T] {
	return FlatMap(m, f)
}

// AndThen is FlatMap.
func (m Maybe[T]) AndThen(f func(T) Maybe[T]) Maybe[T] {
	return FlatMap(m, f)
}

// Recover replaces an Absent with def, normalized like Of. A Present is
// returned unchanged.
func (m Maybe[T]) Recover(def T) Maybe[T] {
	if m.present {
		return m
	}
	return wrap(def, labelRecover, trace.Trace{})
}

// RecoverFunc is Recover with a lazily computed default. f is only called on
// an Absent.
func (m Maybe[T]) RecoverFunc(f func() T) Maybe[T] {
	if m.present {
		return m
	}
	return wrap(f(), labelRecover, trace.Trace{})
}

// RecoverWith replaces an Absent with the Maybe returned by f.
func (m Maybe[T]) RecoverWith(f func() Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return relabel(f(), labelRecover)
}

// Or returns m if present, other otherwise.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return relabel(other, labelRecover)
}

// Catch calls f when m is Absent. It always returns m.
func (m Maybe[T]) Catch(f func()) Maybe[T] {
	if !m.present {
		f()
	}
	return m
}

// Filter keeps a present value when keep returns true. A rejected value
// becomes Absent and the rejection is recorded in the trace.
func (m Maybe[T]) Filter(keep func(T) bool) Maybe[T] {
	if !m.present || keep(m.value) {
		return m
	}
	return absent[T](labelFilter, m.trace)
}

// ForEach calls f with the value if present.
func (m Maybe[T]) ForEach(f func(T)) {
	if m.present {
		f(m.value)
	}
}

// ToSlice returns a one element slice for a Present and an empty one for an
// Absent.
func (m Maybe[T]) ToSlice() []T {
	if !m.present {
		return []T{}
	}
	return []T{m.value}
}
