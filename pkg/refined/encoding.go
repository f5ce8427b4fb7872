package refined

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler           = Refined[int, NonZero[int]]{}
	_ json.Unmarshaler         = (*Refined[int, NonZero[int]])(nil)
	_ encoding.TextMarshaler   = Refined[int, NonZero[int]]{}
	_ encoding.TextUnmarshaler = (*Refined[int, NonZero[int]])(nil)
	_ yaml.Marshaler           = Refined[int, NonZero[int]]{}
	_ yaml.Unmarshaler         = (*Refined[int, NonZero[int]])(nil)
)

// MarshalJSON encodes the held value. The zero value cannot be encoded.
func (r Refined[V, C]) MarshalJSON() ([]byte, error) {
	if !r.ok {
		return nil, notConstructed[V, C]()
	}
	return json.Marshal(r.value)
}

// UnmarshalJSON decodes a V and checks it against C before storing it.
func (r *Refined[V, C]) UnmarshalJSON(data []byte) error {
	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return r.set(value)
}

// MarshalText encodes the held value as text. Strings are written verbatim,
// numbers in decimal, durations in time.Duration.String form and
// encoding.TextMarshaler values use their own encoding. Composite values are
// rendered as YAML.
func (r Refined[V, C]) MarshalText() ([]byte, error) {
	if !r.ok {
		return nil, notConstructed[V, C]()
	}
	return encodeText(r.value)
}

// UnmarshalText decodes text into a V and checks it against C. It lets env
// and flag parsers build refined values directly.
func (r *Refined[V, C]) UnmarshalText(text []byte) error {
	value, err := decodeText[V](text)
	if err != nil {
		return err
	}
	return r.set(value)
}

// MarshalYAML encodes the held value.
func (r Refined[V, C]) MarshalYAML() (any, error) {
	if !r.ok {
		return nil, notConstructed[V, C]()
	}
	return r.value, nil
}

// UnmarshalYAML decodes a V from node and checks it against C.
func (r *Refined[V, C]) UnmarshalYAML(node *yaml.Node) error {
	var value V
	if err := node.Decode(&value); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return r.set(value)
}

func (r *Refined[V, C]) set(value V) error {
	built, err := New[C](value)
	if err != nil {
		return err
	}
	*r = built
	return nil
}

func encodeText(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return bytes.Clone(v), nil
	case time.Duration:
		return []byte(v.String()), nil
	case encoding.TextMarshaler:
		return v.MarshalText()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return []byte(rv.String()), nil
	case reflect.Bool:
		return strconv.AppendBool(nil, rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(nil, rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.AppendUint(nil, rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.AppendFloat(nil, rv.Float(), 'g', -1, rv.Type().Bits()), nil
	}

	out, err := yaml.Marshal(value)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(out, []byte("\n")), nil
}

// decodeText parses text the way env and flag values are written: scalars
// in plain decimal form, durations in time.ParseDuration form. Only
// composite kinds fall back to YAML.
func decodeText[T any](text []byte) (T, error) {
	var value T
	switch p := any(&value).(type) {
	case *string:
		*p = string(text)
		return value, nil
	case *[]byte:
		*p = bytes.Clone(text)
		return value, nil
	case *time.Duration:
		d, err := time.ParseDuration(string(text))
		if err != nil {
			return value, errors.Join(ErrDecode, err)
		}
		*p = d
		return value, nil
	case encoding.TextUnmarshaler:
		if err := p.UnmarshalText(text); err != nil {
			return value, errors.Join(ErrDecode, err)
		}
		return value, nil
	}

	if err := setText(reflect.ValueOf(&value).Elem(), string(text)); err != nil {
		return value, errors.Join(ErrDecode, err)
	}
	return value, nil
}

var errEmptyText = errors.New("empty text")

func setText(rv reflect.Value, s string) error {
	if rv.Kind() == reflect.String {
		rv.SetString(s)
		return nil
	}
	if s == "" {
		return errEmptyText
	}

	switch rv.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	default:
		return yaml.Unmarshal([]byte(s), rv.Addr().Interface())
	}
	return nil
}
