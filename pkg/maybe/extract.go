package maybe

// Get returns the value, or a *ValueExpectedError carrying the rendered
// trace when m is Absent.
func (m Maybe[T]) Get() (T, error) {
	if m.present {
		return m.value, nil
	}

	var zero T
	tr := m.diagnostics()
	return zero, &ValueExpectedError{Message: tr.RenderError(getMessage), Trace: tr}
}

// MustGet is Get that panics with the error.
func (m Maybe[T]) MustGet() T {
	v, err := m.Get()
	if err != nil {
		panic(err)
	}
	return v
}

func (m Maybe[T]) OrElse(def T) T {
	if m.present {
		return m.value
	}
	return def
}

// OrElseGet returns the value, or the result of f. f is only called on an
// Absent.
func (m Maybe[T]) OrElseGet(f func() T) T {
	if m.present {
		return m.value
	}
	return f()
}

// OrDefault returns the value or the zero value of T.
func (m Maybe[T]) OrDefault() T {
	var zero T
	return m.OrElse(zero)
}

// OrRaise returns the value of a Present, ignoring opts. For an Absent it
// returns the error described by opts, by default a *ValueExpectedError,
// with the rendered trace appended to the message unless WithoutTrace is
// given.
func (m Maybe[T]) OrRaise(opts ...RaiseOption) (T, error) {
	if m.present {
		return m.value, nil
	}

	var zero T
	o := newRaiseOptions(opts)
	err := o.build()
	if !o.printTrace {
		if e, ok := err.(*ValueExpectedError); ok {
			e.Trace = m.diagnostics()
		}
		return zero, err
	}
	return zero, withTrace(err, m.diagnostics())
}
