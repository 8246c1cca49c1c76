package capability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	n int
}

func (c counter) Forward(name string, args ...any) (any, error) {
	if name == "inc" {
		return c.n + 1, nil
	}
	return nil, ErrUnsupported
}

func TestApply_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry().Apply(42, Call("upcase"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupported))

	var unsupported *UnsupportedError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "upcase", unsupported.Op)
	assert.Equal(t, "int", unsupported.Receiver)
	assert.Equal(t, "unsupported capability upcase for int", err.Error())
}

func TestApply_ForwarderFirst(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	out, err := r.Apply(counter{n: 1}, Call("inc"))
	require.NoError(t, err)
	assert.Equal(t, 2, out)

	r.Register("to_s", func(recv any, args []any) (any, error) { return "registry", nil })
	out, err = r.Apply(counter{n: 1}, Call("to_s"))
	require.NoError(t, err)
	assert.Equal(t, "registry", out)
}

func TestApply_LaterRegistrationWins(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("name", On(func(s string, _ []any) (any, error) { return "first", nil }))
	r.Register("name", On(func(s string, _ []any) (any, error) { return "second", nil }))
	r.Register("name", On(func(n int, _ []any) (any, error) { return "int", nil }))

	out, err := r.Apply("x", Call("name"))
	require.NoError(t, err)
	assert.Equal(t, "second", out)

	out, err = r.Apply(7, Call("name"))
	require.NoError(t, err)
	assert.Equal(t, "int", out)
}

func TestRegistry_NamesAndClone(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("b", On(func(s string, _ []any) (any, error) { return s, nil }))
	r.Register("a", On(func(s string, _ []any) (any, error) { return s, nil }))

	c := r.Clone()
	c.Register("c", On(func(s string, _ []any) (any, error) { return s, nil }))

	assert.Equal(t, []string{"a", "b"}, r.Names())
	assert.Equal(t, []string{"a", "b", "c"}, c.Names())
}

func TestDefault_HasBuiltins(t *testing.T) {
	t.Parallel()

	names := Default.Names()
	for _, n := range []string{IndexName, "upcase", "slice", "keys"} {
		assert.Contains(t, names, n)
	}
}
