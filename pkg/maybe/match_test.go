package maybe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/possibly/pkg/maybe/match"
)

func TestMatches(t *testing.T) {
	t.Parallel()

	assert.True(t, Present(1).Matches(Present(1)))
	assert.False(t, Of(1).Matches(Present(2)))
	assert.False(t, Present(1).Matches(AnyAbsent))
	assert.False(t, AnyAbsent.Matches(Present(1)))
	assert.True(t, AnyAbsent.Matches(Absent[int]()))
	assert.True(t, Present(match.Between(1, 3)).Matches(Present(2)))
	assert.True(t, Present(match.TypeOf[int]()).Matches(Present(2)))
	assert.True(t, AnyMaybe.Matches(Present(2)))
	assert.True(t, AnyMaybe.Matches(Absent[int]()))
	assert.True(t, AnyPresent.Matches(Present(6)))
	assert.False(t, AnyMaybe.Matches(2))
}

func TestMatches_AbsentPattern(t *testing.T) {
	t.Parallel()

	assert.True(t, Absent[int]().Matches(Absent[string]()))
	assert.False(t, Absent[int]().Matches(Of(1)))
	assert.False(t, Of(1).Matches(Absent[int]()))
	assert.False(t, Of(1).Matches(1))
}

func TestMatches_Predicates(t *testing.T) {
	t.Parallel()

	even := func(v any) bool { return v.(int)%2 == 0 }
	odd := match.Pred(func(v int) bool { return v%2 == 1 })

	assert.True(t, Of(even).Matches(Of(2)))
	assert.False(t, Of(odd).Matches(Of(2)))
}

func TestMatches_Nested(t *testing.T) {
	t.Parallel()

	pattern := Present(Present(match.Between(0, 2)))
	assert.True(t, pattern.Matches(Present(Of(1))))
	assert.False(t, pattern.Matches(Present(Of(5))))
}

func caseWhen[T any](m Maybe[T], matching, nonMatching match.Matcher) bool {
	return Switch(m,
		When(nonMatching, func(Maybe[T]) bool { return false }),
		When(matching, func(Maybe[T]) bool { return true }),
	).OrElse(false)
}

func TestSwitch(t *testing.T) {
	t.Parallel()

	even := func(v any) bool { return v.(int)%2 == 0 }
	odd := func(v any) bool { return v.(int)%2 == 1 }

	assert.True(t, caseWhen(Of(1), AnyPresent, AnyAbsent))
	assert.True(t, caseWhen(Wrap(nil), AnyAbsent, AnyPresent))
	assert.True(t, caseWhen(Of(1), Present(1), Present(2)))
	assert.True(t, caseWhen(Of(1), Present(match.Between(0, 2)), Present(match.Between(2, 3))))
	assert.True(t, caseWhen(Of(2), Of(even), Of(odd)))
}

func TestSwitch_NoMatch(t *testing.T) {
	t.Parallel()

	out := Switch(Of(5), When(Present(1), func(Maybe[int]) string { return "one" }))
	assert.True(t, out.IsAbsent())
	assert.Equal(t, []string{"Maybe", "switch"}, out.Trace().Labels())

	named := Switch(Of(1), When(Present(1), func(m Maybe[int]) string { return "one" }))
	assert.True(t, named.Equal(Of("one")))
}
