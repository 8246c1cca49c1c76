package match

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Matcher tests whether a candidate belongs to the set it describes.
type Matcher interface {
	Matches(candidate any) bool
}

// Func adapts a predicate to a Matcher.
type Func func(candidate any) bool

func (f Func) Matches(candidate any) bool {
	return f(candidate)
}

// Accepts reports whether pattern accepts candidate.
func Accepts(pattern, candidate any) bool {
	switch p := pattern.(type) {
	case Matcher:
		return p.Matches(candidate)
	case func(any) bool:
		return p(candidate)
	}
	return reflect.DeepEqual(pattern, candidate)
}

// Pred matches candidates of type T for which f returns true.
func Pred[T any](f func(T) bool) Matcher {
	return Func(func(candidate any) bool {
		v, ok := candidate.(T)
		return ok && f(v)
	})
}

// TypeOf matches any candidate of type T.
func TypeOf[T any]() Matcher {
	return Func(func(candidate any) bool {
		_, ok := candidate.(T)
		return ok
	})
}

// Equal matches candidates deeply equal to v.
func Equal(v any) Matcher {
	return Func(func(candidate any) bool {
		return reflect.DeepEqual(v, candidate)
	})
}

// Any matches everything.
func Any() Matcher {
	return Func(func(any) bool { return true })
}

// OneOf matches when any of the patterns accepts the candidate.
func OneOf(patterns ...any) Matcher {
	return Func(func(candidate any) bool {
		for _, p := range patterns {
			if Accepts(p, candidate) {
				return true
			}
		}
		return false
	})
}

// Range is an inclusive interval of ordered values.
type Range[T constraints.Ordered] struct {
	Min T
	Max T
}

// Between builds an inclusive Range.
func Between[T constraints.Ordered](lo, hi T) Range[T] {
	return Range[T]{Min: lo, Max: hi}
}

func (r Range[T]) Matches(candidate any) bool {
	v, ok := candidate.(T)
	return ok && r.Min <= v && v <= r.Max
}
