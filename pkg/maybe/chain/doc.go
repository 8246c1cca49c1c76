// Package chain provides a fluent wrapper around maybe.Maybe[any] for
// digging through dynamically typed data with forwarded operations.
//
// Forwarding on a Maybe returns an error when the wrapped value does not
// support an operation, which breaks method chaining. Chain carries that
// error instead: once set, every further step is skipped and the terminal
// operations return it.
//
// Key operations:
// - Start/FromValue: begin a chain from a Maybe or a raw value
// - Index/Call/Forward: forward an operation to the wrapped value
// - Map/Recover/Catch: apply the matching maybe combinator
// - Get/OrElse/OrRaise: extract the value
// - Finally: collapse the chain via handlers
package chain
