package maybe

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// MarshalJSON encodes an Absent as null and a Present as its value.
func (m Maybe[T]) MarshalJSON() ([]byte, error) {
	if !m.present {
		return jsonNull, nil
	}
	return json.Marshal(m.value)
}

func (m *Maybe[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*m = Absent[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Of(v)
	return nil
}

// MarshalYAML encodes an Absent as null and a Present as its value.
func (m Maybe[T]) MarshalYAML() (interface{}, error) {
	if !m.present {
		return nil, nil
	}
	return m.value, nil
}

func (m *Maybe[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*m = Absent[T]()
		return nil
	}

	var v T
	if err := value.Decode(&v); err != nil {
		return err
	}
	*m = Of(v)
	return nil
}

// IsZero reports an Absent, so yaml omitempty drops it.
func (m Maybe[T]) IsZero() bool {
	return !m.present
}

type rawDecoder interface {
	decodeRaw(data interface{}) error
}

func (m *Maybe[T]) decodeRaw(data interface{}) error {
	if IsNil(data) {
		*m = Absent[T]()
		return nil
	}

	var v T
	if err := decode(data, &v); err != nil {
		return err
	}
	*m = Of(v)
	return nil
}

// DecodeHook lets mapstructure decode raw values into Maybe fields. A nil or
// missing input leaves the field Absent.
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from == to {
			return data, nil
		}

		target := reflect.New(to)
		d, ok := target.Interface().(rawDecoder)
		if !ok {
			return data, nil
		}
		if err := d.decodeRaw(data); err != nil {
			return nil, err
		}
		return target.Elem().Interface(), nil
	}
}

// Decode is mapstructure.Decode with DecodeHook installed.
func Decode(input interface{}, output interface{}) error {
	return decode(input, output)
}

func decode(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: DecodeHook(),
		Result:     output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
