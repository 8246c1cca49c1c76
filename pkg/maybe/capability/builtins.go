package capability

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NewBuiltinRegistry returns a registry holding the builtin operations:
//
//	[]          subscript on maps, slices, arrays, strings and structs
//	upcase      downcase  capitalize  title  strip  split  to_s
//	length      size      slice       first  last   reverse
//	contains    keys      values      odd    even
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()

	r.Register(IndexName, index)

	r.Register("upcase", onString("upcase", func(s string) any {
		return cases.Upper(language.Und).String(s)
	}))
	r.Register("downcase", onString("downcase", func(s string) any {
		return cases.Lower(language.Und).String(s)
	}))
	r.Register("capitalize", onString("capitalize", capitalize))
	r.Register("title", onString("title", func(s string) any {
		return cases.Title(language.Und).String(s)
	}))
	r.Register("strip", onString("strip", func(s string) any {
		return strings.TrimSpace(s)
	}))
	r.Register("split", On(split))
	r.Register("to_s", func(recv any, args []any) (any, error) {
		if err := arity("to_s", args, 0); err != nil {
			return nil, err
		}
		return fmt.Sprint(recv), nil
	})

	r.Register("length", length)
	r.Register("size", length)
	r.Register("slice", slice)
	r.Register("first", first)
	r.Register("last", last)
	r.Register("reverse", reverse)
	r.Register("contains", contains)
	r.Register("keys", keys)
	r.Register("values", values)
	r.Register("odd", parity("odd", 1))
	r.Register("even", parity("even", 0))

	return r
}

func onString(name string, f func(string) any) Handler {
	return On(func(s string, args []any) (any, error) {
		if err := arity(name, args, 0); err != nil {
			return nil, err
		}
		return f(s), nil
	})
}

func capitalize(s string) any {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(string(r)) + cases.Lower(language.Und).String(s[size:])
}

func split(s string, args []any) (any, error) {
	switch len(args) {
	case 0:
		return strings.Fields(s), nil
	case 1:
		sep, ok := args[0].(string)
		if !ok {
			return nil, invalidArguments("split", "separator must be a string, got %T", args[0])
		}
		return strings.Split(s, sep), nil
	}
	return nil, invalidArguments("split", "want at most 1 argument, got %d", len(args))
}

func index(recv any, args []any) (any, error) {
	v := deref(reflect.ValueOf(recv))
	if !v.IsValid() {
		return nil, nil
	}

	switch v.Kind() {
	case reflect.Map:
		if err := arity(IndexName, args, 1); err != nil {
			return nil, err
		}
		return mapIndex(v, args[0]), nil
	case reflect.Slice, reflect.Array, reflect.String:
		return sequenceIndex(v, args)
	case reflect.Struct:
		if err := arity(IndexName, args, 1); err != nil {
			return nil, err
		}
		return structField(v.Interface(), args[0])
	}

	return nil, ErrUnsupported
}

func sequenceIndex(v reflect.Value, args []any) (any, error) {
	switch len(args) {
	case 1:
		i, err := intArg(IndexName, args[0])
		if err != nil {
			return nil, err
		}
		return at(v, i), nil
	case 2:
		start, err := intArg(IndexName, args[0])
		if err != nil {
			return nil, err
		}
		n, err := intArg(IndexName, args[1])
		if err != nil {
			return nil, err
		}
		return subsequence(v, start, n), nil
	}
	return nil, invalidArguments(IndexName, "want 1 or 2 arguments, got %d", len(args))
}

func mapIndex(m reflect.Value, key any) any {
	k := reflect.ValueOf(key)
	kt := m.Type().Key()
	if !k.IsValid() {
		return nil
	}
	if !k.Type().AssignableTo(kt) {
		if k.Kind() != kt.Kind() || !k.Type().ConvertibleTo(kt) {
			return nil
		}
		k = k.Convert(kt)
	}

	e := m.MapIndex(k)
	if !e.IsValid() {
		return nil
	}
	return e.Interface()
}

func length(recv any, args []any) (any, error) {
	if err := arity("length", args, 0); err != nil {
		return nil, err
	}
	v := deref(reflect.ValueOf(recv))
	if !v.IsValid() {
		return nil, ErrUnsupported
	}
	switch v.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(v.String()), nil
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return v.Len(), nil
	}
	return nil, ErrUnsupported
}

func slice(recv any, args []any) (any, error) {
	v := deref(reflect.ValueOf(recv))
	if !isSequence(v) {
		return nil, ErrUnsupported
	}
	return sequenceIndex(v, args)
}

func first(recv any, args []any) (any, error) {
	if err := arity("first", args, 0); err != nil {
		return nil, err
	}
	v := deref(reflect.ValueOf(recv))
	if !isSequence(v) {
		return nil, ErrUnsupported
	}
	return at(v, 0), nil
}

func last(recv any, args []any) (any, error) {
	if err := arity("last", args, 0); err != nil {
		return nil, err
	}
	v := deref(reflect.ValueOf(recv))
	if !isSequence(v) {
		return nil, ErrUnsupported
	}
	return at(v, -1), nil
}

func reverse(recv any, args []any) (any, error) {
	if err := arity("reverse", args, 0); err != nil {
		return nil, err
	}
	v := deref(reflect.ValueOf(recv))
	if !isSequence(v) {
		return nil, ErrUnsupported
	}
	if v.Kind() == reflect.String {
		runes := []rune(v.String())
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes), nil
	}

	out := copySequence(v, 0, v.Len()).Interface()
	swap := reflect.Swapper(out)
	for i, j := 0, v.Len()-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
	return out, nil
}

func contains(recv any, args []any) (any, error) {
	if err := arity("contains", args, 1); err != nil {
		return nil, err
	}
	v := deref(reflect.ValueOf(recv))
	if !v.IsValid() {
		return nil, ErrUnsupported
	}

	switch v.Kind() {
	case reflect.String:
		sub, ok := args[0].(string)
		if !ok {
			return nil, invalidArguments("contains", "want a string, got %T", args[0])
		}
		return strings.Contains(v.String(), sub), nil
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if reflect.DeepEqual(v.Index(i).Interface(), args[0]) {
				return true, nil
			}
		}
		return false, nil
	case reflect.Map:
		return mapIndex(v, args[0]) != nil, nil
	}
	return nil, ErrUnsupported
}

func keys(recv any, args []any) (any, error) {
	if err := arity("keys", args, 0); err != nil {
		return nil, err
	}
	v := deref(reflect.ValueOf(recv))
	if !v.IsValid() || v.Kind() != reflect.Map {
		return nil, ErrUnsupported
	}

	ks := sortedKeys(v)
	out := reflect.MakeSlice(reflect.SliceOf(v.Type().Key()), 0, len(ks))
	for _, k := range ks {
		out = reflect.Append(out, k)
	}
	return out.Interface(), nil
}

func values(recv any, args []any) (any, error) {
	if err := arity("values", args, 0); err != nil {
		return nil, err
	}
	v := deref(reflect.ValueOf(recv))
	if !v.IsValid() || v.Kind() != reflect.Map {
		return nil, ErrUnsupported
	}

	ks := sortedKeys(v)
	out := reflect.MakeSlice(reflect.SliceOf(v.Type().Elem()), 0, len(ks))
	for _, k := range ks {
		out = reflect.Append(out, v.MapIndex(k))
	}
	return out.Interface(), nil
}

func parity(name string, rem int64) Handler {
	return func(recv any, args []any) (any, error) {
		if err := arity(name, args, 0); err != nil {
			return nil, err
		}
		v := reflect.ValueOf(recv)
		switch {
		case v.CanInt():
			return abs(v.Int()%2) == rem, nil
		case v.CanUint():
			return int64(v.Uint()%2) == rem, nil
		}
		return nil, ErrUnsupported
	}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// sortedKeys orders map keys by their printed form so results are stable.
func sortedKeys(m reflect.Value) []reflect.Value {
	ks := m.MapKeys()
	slices.SortFunc(ks, func(a, b reflect.Value) bool {
		return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
	})
	return ks
}

func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isSequence(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		return true
	}
	return false
}

// at returns the element at i, counting from the end when i is negative,
// or nil when i is out of range.
func at(v reflect.Value, i int) any {
	if v.Kind() == reflect.String {
		runes := []rune(v.String())
		if i < 0 {
			i += len(runes)
		}
		if i < 0 || i >= len(runes) {
			return nil
		}
		return string(runes[i])
	}

	if i < 0 {
		i += v.Len()
	}
	if i < 0 || i >= v.Len() {
		return nil
	}
	return v.Index(i).Interface()
}

// subsequence returns n elements starting at start. A start past the end or
// a negative length yields nil; a start equal to the length yields an empty
// sequence.
func subsequence(v reflect.Value, start, n int) any {
	if v.Kind() == reflect.String {
		runes := []rune(v.String())
		lo, hi, ok := bounds(len(runes), start, n)
		if !ok {
			return nil
		}
		return string(runes[lo:hi])
	}

	lo, hi, ok := bounds(v.Len(), start, n)
	if !ok {
		return nil
	}
	return copySequence(v, lo, hi).Interface()
}

func bounds(size, start, n int) (int, int, bool) {
	if start < 0 {
		start += size
	}
	if start < 0 || start > size || n < 0 {
		return 0, 0, false
	}
	if n > size-start {
		n = size - start
	}
	return start, start + n, true
}

// copySequence copies v[lo:hi] into a fresh slice so results never alias the
// wrapped value.
func copySequence(v reflect.Value, lo, hi int) reflect.Value {
	out := reflect.MakeSlice(reflect.SliceOf(v.Type().Elem()), hi-lo, hi-lo)
	for i := lo; i < hi; i++ {
		out.Index(i - lo).Set(v.Index(i))
	}
	return out
}

func arity(op string, args []any, n int) error {
	if len(args) != n {
		return invalidArguments(op, "want %d arguments, got %d", n, len(args))
	}
	return nil
}

func intArg(op string, a any) (int, error) {
	v := reflect.ValueOf(a)
	switch {
	case !v.IsValid():
	case v.CanInt():
		if n := v.Int(); n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
		return 0, invalidArguments(op, "integer %d out of range", v.Int())
	case v.CanUint():
		if n := v.Uint(); n <= math.MaxInt {
			return int(n), nil
		}
		return 0, invalidArguments(op, "integer %d out of range", v.Uint())
	}
	return 0, invalidArguments(op, "want an integer, got %T", a)
}
