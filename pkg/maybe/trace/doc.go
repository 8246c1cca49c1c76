// Package trace holds the invocation log carried by every maybe.Maybe value.
//
// A Trace is an append-only, insertion-ordered list of entries. Each entry
// pairs the printable form of an applied operation (its label) with the
// rendering of the value that operation produced (its snapshot). Appending
// never mutates the receiver, so a Trace can be shared freely between values.
//
// Rendering produces the two-column table used in error messages:
//
//	Maybe   => Present(map[hash:1])
//	[hash]  => Absent
//	[name]  => Absent
package trace
