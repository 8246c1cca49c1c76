package capability

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when a receiver does not support an operation.
	ErrUnsupported = errors.New("unsupported capability")
	// ErrInvalidArguments is returned when an operation is called with
	// arguments it cannot use.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// UnsupportedError reports an operation that no handler accepted.
type UnsupportedError struct {
	Op       string
	Receiver string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported capability %s for %s", e.Op, e.Receiver)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

func invalidArguments(op string, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidArguments, fmt.Sprintf(format, args...))
}
