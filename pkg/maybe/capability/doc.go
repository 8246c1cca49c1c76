// Package capability implements the operations that a maybe.Maybe can forward
// to the value it wraps.
//
// Forwarding is restricted to registered operations. An operation is either a
// named call (Call("upcase"), Call("slice", 1, 4)) or a subscript
// (Index("hash")). A Registry resolves an operation against a receiver:
//
//   - a receiver implementing Forwarder is asked first;
//   - otherwise the handlers registered under the operation name are tried,
//     most recent registration first.
//
// A handler that does not accept the receiver returns ErrUnsupported so the
// next one can be tried. When nobody accepts the operation Apply returns an
// *UnsupportedError.
//
// Default holds the builtin operations and is what maybe.Maybe uses unless a
// registry is passed explicitly.
package capability
