package chain

import (
	"github.com/ib-77/possibly/pkg/maybe"
	"github.com/ib-77/possibly/pkg/maybe/capability"
)

// Chain wraps a maybe.Maybe[any] and the first forwarding error
type Chain struct {
	current maybe.Maybe[any]
	reg     *capability.Registry
	err     error
}

// Start creates a new chain from a maybe.Maybe
func Start[T any](m maybe.Maybe[T]) *Chain {
	return &Chain{current: maybe.ToAny(m), reg: capability.Default}
}

// FromValue creates a new chain from a raw value
func FromValue(v any) *Chain {
	return &Chain{current: maybe.Wrap(v), reg: capability.Default}
}

// WithRegistry resolves further operations with reg
func (c *Chain) WithRegistry(reg *capability.Registry) *Chain {
	return &Chain{current: c.current, reg: reg, err: c.err}
}

// Result returns the underlying maybe and the forwarding error, if any
func (c *Chain) Result() (maybe.Maybe[any], error) {
	return c.current, c.err
}

func (c *Chain) Err() error {
	return c.err
}

// Forward applies op to the wrapped value
func (c *Chain) Forward(op capability.Op) *Chain {
	if c.err != nil {
		return c
	}
	next, err := c.current.ForwardWith(c.reg, op)
	if err != nil {
		return &Chain{current: c.current, reg: c.reg, err: err}
	}
	return &Chain{current: next, reg: c.reg}
}

func (c *Chain) Index(keys ...any) *Chain {
	return c.Forward(capability.Index(keys...))
}

func (c *Chain) Call(name string, args ...any) *Chain {
	return c.Forward(capability.Call(name, args...))
}

// Map chains a transformation of the present value
func (c *Chain) Map(f func(any) any) *Chain {
	return c.then(c.current.Map(f))
}

// Recover replaces an absent value
func (c *Chain) Recover(v any) *Chain {
	return c.then(c.current.Recover(v))
}

// Catch performs a side effect when the value is absent
func (c *Chain) Catch(f func()) *Chain {
	if c.err != nil {
		return c
	}
	c.current.Catch(f)
	return c
}

func (c *Chain) then(next maybe.Maybe[any]) *Chain {
	if c.err != nil {
		return c
	}
	return &Chain{current: next, reg: c.reg}
}

// Get returns the value, the forwarding error or a value expected error
func (c *Chain) Get() (any, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.current.Get()
}

func (c *Chain) OrElse(def any) (any, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.current.OrElse(def), nil
}

func (c *Chain) OrRaise(opts ...maybe.RaiseOption) (any, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.current.OrRaise(opts...)
}

// Finally collapses the chain into a final value
func Finally[R any](c *Chain, onPresent func(any) R, onAbsent func() R, onError func(error) R) R {
	if c.err != nil {
		return onError(c.err)
	}
	return maybe.Eliminate(c.current, onPresent, onAbsent)
}

// As narrows the result to a maybe.Maybe[T]. A present value that is not a T
// yields false.
func As[T any](c *Chain) (maybe.Maybe[T], bool, error) {
	if c.err != nil {
		return maybe.Maybe[T]{}, false, c.err
	}
	m, ok := maybe.Cast[T](c.current)
	return m, ok, nil
}
