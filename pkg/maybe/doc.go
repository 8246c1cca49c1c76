// Package maybe implements an optional value with two variants: Present,
// carrying a value, and Absent, carrying none.
//
// Values enter through Of (or Present/Absent). A nil input, or an Absent of
// any type, becomes Absent; a Present of any type is unwrapped one level, so
// a dynamically typed Maybe never nests.
//
//	name, err := maybe.Wrap(payload).Index("user")   // Maybe[any]
//
// Every instance carries a trace.Trace recording the operations that led to
// it. The trace is only used for diagnostics: Get and OrRaise on an Absent
// render it into the returned error, pointing at the step where the value was
// lost. It never takes part in Equal.
//
// Operations unknown to this package can be forwarded to the wrapped value
// through Call, Index and Forward, which resolve them with a
// capability.Registry. An Absent never resolves anything: it records the
// operation in its trace and stays Absent.
//
// Combinators that change the value type are package functions (Map,
// FlatMap, Eliminate, Fold); the methods of the same names keep the type.
package maybe
