package capability

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// IndexName is the name under which subscript handlers are registered.
const IndexName = "[]"

// Op is a single operation to forward: a name plus its arguments.
type Op struct {
	name  string
	args  []any
	index bool
}

// Call builds a named operation.
func Call(name string, args ...any) Op {
	return Op{name: name, args: slices.Clone(args)}
}

// Index builds a subscript operation.
func Index(keys ...any) Op {
	return Op{name: IndexName, args: slices.Clone(keys), index: true}
}

func (o Op) Name() string {
	return o.name
}

func (o Op) Args() []any {
	return slices.Clone(o.args)
}

func (o Op) IsIndex() bool {
	return o.index
}

// Label is the printable form of the operation used in traces: "[key]" for a
// subscript, "name(a, b)" for a call with arguments and "name" without.
func (o Op) Label() string {
	if o.index {
		return "[" + joinArgs(o.args) + "]"
	}
	if len(o.args) == 0 {
		return o.name
	}
	return o.name + "(" + joinArgs(o.args) + ")"
}

func (o Op) String() string {
	return o.Label()
}

func joinArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, ", ")
}
