package maybe

import "github.com/ib-77/possibly/pkg/maybe/trace"

func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.present {
		return Maybe[U]{trace: m.trace}
	}
	return wrap(f(m.value), labelMap, trace.Trace{})
}

func FlatMap[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.present {
		return Maybe[U]{trace: m.trace}
	}
	return relabel(f(m.value), labelFlatMap)
}

// Eliminate returns onPresent(v) for a Present and onAbsent() for an Absent.
// The result is not wrapped.
func Eliminate[T, R any](m Maybe[T], onPresent func(T) R, onAbsent func() R) R {
	if m.present {
		return onPresent(m.value)
	}
	return onAbsent()
}

// Fold returns f(init, v) for a Present and init for an Absent.
func Fold[T, R any](m Maybe[T], init R, f func(acc R, v T) R) R {
	if m.present {
		return f(init, m.value)
	}
	return init
}
