package maybe

import (
	"github.com/ib-77/possibly/pkg/maybe/match"
	"github.com/ib-77/possibly/pkg/maybe/trace"
)

var (
	_ match.Matcher = Maybe[int]{}
	_ match.Matcher = AnyMaybe
)

// Matches uses m as a pattern against candidate, which must itself be a
// Maybe of any type. An Absent matches only Absents. A Present matches a
// Present whose value its own value accepts (see match.Accepts), so ranges,
// predicates, type matchers and nested Maybe patterns all work.
func (m Maybe[T]) Matches(candidate any) bool {
	d, ok := candidate.(dynamic)
	if !ok {
		return false
	}

	v, present := d.anyValue()
	if !m.present {
		return !present
	}
	return present && match.Accepts(m.value, v)
}

// Marker matches Maybes by variant alone.
type Marker int

const (
	AnyMaybe Marker = iota
	AnyPresent
	AnyAbsent
)

func (k Marker) Matches(candidate any) bool {
	d, ok := candidate.(dynamic)
	if !ok {
		return false
	}
	switch k {
	case AnyPresent:
		return d.IsPresent()
	case AnyAbsent:
		return d.IsAbsent()
	}
	return true
}

func (k Marker) String() string {
	switch k {
	case AnyPresent:
		return "Present"
	case AnyAbsent:
		return "Absent"
	}
	return "Maybe"
}

// Case pairs a pattern with the function to run when it matches.
type Case[T, R any] struct {
	pattern match.Matcher
	then    func(Maybe[T]) R
}

func When[T, R any](pattern match.Matcher, then func(Maybe[T]) R) Case[T, R] {
	return Case[T, R]{pattern: pattern, then: then}
}

// Switch runs the first case whose pattern matches m. When none does the
// result is Absent.
func Switch[T, R any](m Maybe[T], cases ...Case[T, R]) Maybe[R] {
	for _, c := range cases {
		if c.pattern.Matches(m) {
			return wrap(c.then(m), labelSwitch, trace.Trace{})
		}
	}
	return absent[R](labelSwitch, m.trace)
}
