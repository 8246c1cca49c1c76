package capability

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shouting struct {
	Name string
	NAME string
}

type person struct {
	Name  string
	Email string `mapstructure:"email_address"`
	age   int
}

func apply(t *testing.T, recv any, op Op) any {
	t.Helper()
	out, err := NewBuiltinRegistry().Apply(recv, op)
	require.NoError(t, err)
	return out
}

func TestBuiltins_Strings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "MAYBE", apply(t, "maybe", Call("upcase")))
	assert.Equal(t, "maybe", apply(t, "MaYbE", Call("downcase")))
	assert.Equal(t, "Hello world", apply(t, "hELLO WORLD", Call("capitalize")))
	assert.Equal(t, "Hello World", apply(t, "hello world", Call("title")))
	assert.Equal(t, "x", apply(t, "  x \n", Call("strip")))
	assert.Equal(t, []string{"a", "b"}, apply(t, "a,b", Call("split", ",")))
	assert.Equal(t, []string{"a", "b"}, apply(t, " a  b ", Call("split")))
	assert.Equal(t, true, apply(t, "maybe", Call("contains", "yb")))
	assert.Equal(t, "ebyam", apply(t, "maybe", Call("reverse")))
	assert.Equal(t, "42", apply(t, 42, Call("to_s")))
}

func TestBuiltins_Index(t *testing.T) {
	t.Parallel()

	data := map[string]any{"hash": map[string]any{"value": 1}, "empty": nil}

	assert.Equal(t, map[string]any{"value": 1}, apply(t, data, Index("hash")))
	assert.Nil(t, apply(t, data, Index("missing")))
	assert.Nil(t, apply(t, data, Index("empty")))
	assert.Nil(t, apply(t, data, Index(3)))

	seq := []int{10, 20, 30}
	assert.Equal(t, 20, apply(t, seq, Index(1)))
	assert.Equal(t, 30, apply(t, seq, Index(-1)))
	assert.Nil(t, apply(t, seq, Index(3)))
	assert.Equal(t, []int{20, 30}, apply(t, seq, Index(1, 5)))

	assert.Equal(t, "a", apply(t, "maybe", Index(1)))
	assert.Equal(t, 2, apply(t, [3]int{1, 2, 3}, Index(1)))
}

func TestBuiltins_IndexStruct(t *testing.T) {
	t.Parallel()

	p := person{Name: "Ann", Email: "ann@example.com", age: 3}

	assert.Equal(t, "Ann", apply(t, p, Index("Name")))
	assert.Equal(t, "Ann", apply(t, &p, Index("name")))
	assert.Equal(t, "ann@example.com", apply(t, p, Index("email_address")))
	assert.Nil(t, apply(t, p, Index("age")))
}

func TestBuiltins_Sequences(t *testing.T) {
	t.Parallel()

	seq := []int{1, 2, 3, 4, 5}

	assert.Equal(t, 5, apply(t, seq, Call("length")))
	assert.Equal(t, 5, apply(t, "héllo", Call("size")))
	assert.Equal(t, []int{2, 3, 4, 5}, apply(t, seq, Call("slice", 1, 4)))
	assert.Equal(t, "ayb", apply(t, "maybe", Call("slice", 1, 3)))
	assert.Equal(t, "", apply(t, "abc", Call("slice", 3, 1)))
	assert.Nil(t, apply(t, "abc", Call("slice", 4, 1)))
	assert.Equal(t, 1, apply(t, seq, Call("first")))
	assert.Equal(t, 5, apply(t, seq, Call("last")))
	assert.Nil(t, apply(t, []int{}, Call("first")))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, apply(t, seq, Call("reverse")))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seq)
	assert.Equal(t, true, apply(t, seq, Call("contains", 3)))
}

func TestBuiltins_Maps(t *testing.T) {
	t.Parallel()

	m := map[string]int{"b": 2, "a": 1}

	assert.Equal(t, []string{"a", "b"}, apply(t, m, Call("keys")))
	assert.Equal(t, []int{1, 2}, apply(t, m, Call("values")))
	assert.Equal(t, 2, apply(t, m, Call("length")))
	assert.Equal(t, true, apply(t, m, Call("contains", "a")))
}

func TestBuiltins_Parity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, true, apply(t, 3, Call("odd")))
	assert.Equal(t, true, apply(t, -3, Call("odd")))
	assert.Equal(t, false, apply(t, uint8(3), Call("even")))
}

func TestBuiltins_Errors(t *testing.T) {
	t.Parallel()

	r := NewBuiltinRegistry()

	_, err := r.Apply(42, Call("upcase"))
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = r.Apply("x", Call("upcase", 1))
	assert.True(t, errors.Is(err, ErrInvalidArguments))

	_, err = r.Apply([]int{1}, Index("a"))
	assert.True(t, errors.Is(err, ErrInvalidArguments))

	_, err = r.Apply(map[string]int{}, Call("slice", 1, 2))
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestBuiltins_SliceHugeLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bc", apply(t, "abc", Call("slice", 1, math.MaxInt)))
	assert.Equal(t, []int{2, 3}, apply(t, []int{1, 2, 3}, Call("slice", 1, math.MaxInt)))
	assert.Equal(t, []int{2, 3}, apply(t, []int{1, 2, 3}, Index(1, math.MaxInt)))
	assert.Equal(t, []int{3}, apply(t, []int{1, 2, 3}, Index(-1, math.MaxInt)))
	assert.Equal(t, "", apply(t, "abc", Call("slice", 3, math.MaxInt)))
}

func TestBuiltins_IndexOutOfIntRange(t *testing.T) {
	t.Parallel()

	r := NewBuiltinRegistry()

	_, err := r.Apply([]int{1, 2, 3}, Index(uint64(math.MaxUint64)))
	assert.True(t, errors.Is(err, ErrInvalidArguments))

	_, err = r.Apply("abc", Call("slice", uint64(math.MaxInt)+1, 1))
	assert.True(t, errors.Is(err, ErrInvalidArguments))

	assert.Equal(t, 3, apply(t, []int{1, 2, 3}, Index(uint64(2))))
}

func TestBuiltins_IndexStructCaseFallbackIsStable(t *testing.T) {
	t.Parallel()

	s := shouting{Name: "quiet", NAME: "LOUD"}

	assert.Equal(t, "quiet", apply(t, s, Index("Name")))
	assert.Equal(t, "LOUD", apply(t, s, Index("NAME")))
	for i := 0; i < 20; i++ {
		assert.Equal(t, "LOUD", apply(t, s, Index("name")))
	}
}
