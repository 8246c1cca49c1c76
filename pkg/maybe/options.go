package maybe

// RaiseOption configures OrRaise.
type RaiseOption func(*raiseOptions)

type raiseOptions struct {
	message    string
	err        error
	errFunc    func(msg string) error
	printTrace bool
}

// WithMessage sets the message of the raised error. With WithError it
// overrides the message of that error.
func WithMessage(msg string) RaiseOption {
	return func(o *raiseOptions) {
		o.message = msg
	}
}

// WithError raises err instead of a *ValueExpectedError. err stays reachable
// through errors.Is and errors.As.
func WithError(err error) RaiseOption {
	return func(o *raiseOptions) {
		o.err = err
	}
}

// WithErrorFunc builds the raised error from the message.
func WithErrorFunc(f func(msg string) error) RaiseOption {
	return func(o *raiseOptions) {
		o.errFunc = f
	}
}

// WithoutTrace keeps the trace out of the error message.
func WithoutTrace() RaiseOption {
	return WithTrace(false)
}

func WithTrace(enabled bool) RaiseOption {
	return func(o *raiseOptions) {
		o.printTrace = enabled
	}
}

func newRaiseOptions(opts []RaiseOption) raiseOptions {
	o := raiseOptions{printTrace: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o raiseOptions) build() error {
	switch {
	case o.err != nil:
		if o.message != "" {
			return &raisedError{msg: o.message, err: o.err}
		}
		return o.err
	case o.errFunc != nil:
		if err := o.errFunc(o.message); err != nil {
			return err
		}
	}

	msg := o.message
	if msg == "" {
		msg = orRaiseMessage
	}
	return &ValueExpectedError{Message: msg}
}
