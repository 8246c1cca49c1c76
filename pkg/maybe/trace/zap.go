package trace

import "go.uber.org/zap/zapcore"

func (e Entry) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("label", e.Label)
	enc.AddString("snapshot", e.Snapshot)
	return nil
}

// MarshalLogArray lets a trace be logged with zap.Array.
func (t Trace) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range t.entries {
		if err := enc.AppendObject(e); err != nil {
			return err
		}
	}
	return nil
}
