package maybe

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject lets a Maybe be logged with zap.Object.
func (m Maybe[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("present", m.present)
	if m.present {
		if err := enc.AddReflected("value", m.value); err != nil {
			return err
		}
	}
	if !m.trace.IsEmpty() {
		enc.AddString("chain", m.trace.ID().String())
	}
	return enc.AddArray("trace", m.trace)
}

// LogAbsent logs msg at warn level with the trace of m when m is Absent.
// It returns m.
// The logged chain id is the one of m's trace, which is renewed at each
// point where a chain starts over (see trace.Trace.Append).
func LogAbsent[T any](m Maybe[T], logger *zap.Logger, msg string) Maybe[T] {
	return m.Catch(func() {
		tr := m.diagnostics()
		logger.Warn(msg,
			zap.String("chain", tr.ID().String()),
			zap.Array("trace", tr),
		)
	})
}
