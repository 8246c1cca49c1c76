package maybe

import (
	"errors"

	"github.com/ib-77/possibly/pkg/maybe/capability"
	"github.com/ib-77/possibly/pkg/maybe/trace"
)

var (
	// ErrValueExpected matches every *ValueExpectedError.
	ErrValueExpected = errors.New("value expected")

	ErrUnsupportedCapability = capability.ErrUnsupported
	ErrInvalidArguments      = capability.ErrInvalidArguments
)

const (
	getMessage     = "`get` called to Absent. A value was expected."
	orRaiseMessage = "`or_raise` called to Absent. A value was expected."
)

// ValueExpectedError is returned when a value is extracted from an Absent.
type ValueExpectedError struct {
	Message string
	Trace   trace.Trace
}

func (e *ValueExpectedError) Error() string {
	return e.Message
}

func (e *ValueExpectedError) Is(target error) bool {
	return target == ErrValueExpected
}

// raisedError carries a caller supplied error under a new message.
type raisedError struct {
	msg string
	err error
}

func (e *raisedError) Error() string {
	return e.msg
}

func (e *raisedError) Unwrap() error {
	return e.err
}

// withTrace returns err with the rendered trace appended to its message.
func withTrace(err error, tr trace.Trace) error {
	switch e := err.(type) {
	case *ValueExpectedError:
		return &ValueExpectedError{Message: tr.RenderError(e.Message), Trace: tr}
	case *raisedError:
		return &raisedError{msg: tr.RenderError(e.msg), err: e.err}
	}
	return &raisedError{msg: tr.RenderError(err.Error()), err: err}
}
