package capability

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Handler applies an operation to a receiver. It returns ErrUnsupported when
// the receiver is not one it handles.
type Handler func(recv any, args []any) (any, error)

// Forwarder is implemented by values that resolve operations themselves.
// Subscripts arrive with the name IndexName. Returning ErrUnsupported falls
// back to the registry.
type Forwarder interface {
	Forward(name string, args ...any) (any, error)
}

// Registry maps operation names to handlers. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// Default is the registry used by maybe.Maybe, preloaded with Builtins.
var Default = NewBuiltinRegistry()

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string][]Handler)}
}

// Register adds a handler for name to the Default registry.
func Register(name string, h Handler) {
	Default.Register(name, h)
}

// Register adds a handler. Handlers registered later take precedence.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = append(r.handlers[name], h)
}

// Names returns the registered operation names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := maps.Keys(r.handlers)
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewRegistry()
	for name, hs := range r.handlers {
		c.handlers[name] = slices.Clone(hs)
	}
	return c
}

// Apply resolves op against recv.
func (r *Registry) Apply(recv any, op Op) (any, error) {
	if f, ok := recv.(Forwarder); ok {
		out, err := f.Forward(op.name, op.args...)
		if !errors.Is(err, ErrUnsupported) {
			return out, err
		}
	}

	r.mu.RLock()
	hs := r.handlers[op.name]
	r.mu.RUnlock()

	for i := len(hs) - 1; i >= 0; i-- {
		out, err := hs[i](recv, op.Args())
		if errors.Is(err, ErrUnsupported) {
			continue
		}
		return out, err
	}

	return nil, &UnsupportedError{Op: op.Label(), Receiver: fmt.Sprintf("%T", recv)}
}

// On adapts a typed function into a Handler that only accepts receivers of
// type R.
func On[R any](h func(recv R, args []any) (any, error)) Handler {
	return func(recv any, args []any) (any, error) {
		r, ok := recv.(R)
		if !ok {
			return nil, ErrUnsupported
		}
		return h(r, args)
	}
}
