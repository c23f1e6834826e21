package param

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/zhamlin/pathroute/jsonschema"
)

const (
	TypeString = "string"
	TypeNumber = "number"
	TypeBool   = "bool"
)

// Segment returns the text from index up to, but not including, the next
// '/' or the end of path, along with the index where it stopped.
func Segment(path string, index int) (string, int) {
	if index >= len(path) {
		return "", len(path)
	}

	rest := path[index:]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i], index + i
	}
	return rest, len(path)
}

// DecodeString reads a single path segment, possibly empty. It never fails.
func DecodeString(path string, index int) (any, int, bool) {
	s, next := Segment(path, index)
	return s, next, true
}

// EncodeString writes strings as is and uses fmt for everything else.
func EncodeString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return fmt.Sprint(value), nil
}

// DecodeNumber reads a segment as a base 10 int. Empty or non numeric
// segments fail.
func DecodeNumber(path string, index int) (any, int, bool) {
	s, next := Segment(path, index)
	n, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return nil, index, false
	}
	return int(n), next, true
}

// EncodeNumber writes any value with an integer kind, including named
// integer types.
func EncodeNumber(value any) (string, error) {
	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	}
	return "", fmt.Errorf("%w: %T is not an integer", ErrInvalidParamType, value)
}

// DecodeBool reads a segment with [strconv.ParseBool].
func DecodeBool(path string, index int) (any, int, bool) {
	s, next := Segment(path, index)
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, index, false
	}
	return b, next, true
}

func EncodeBool(value any) (string, error) {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Bool {
		return "", fmt.Errorf("%w: %T is not a bool", ErrInvalidParamType, value)
	}
	return strconv.FormatBool(v.Bool()), nil
}

// String returns the codec registered as "string".
func String() Codec {
	return Codec{
		Decode: DecodeString,
		Encode: EncodeString,
		Schema: jsonschema.Extend(jsonschema.NewStringSchema()).
			Description("Path segment up to the next slash.").
			Build(),
	}
}

// Number returns the codec registered as "number". Values are ints.
func Number() Codec {
	return Codec{
		Decode: DecodeNumber,
		Encode: EncodeNumber,
		Schema: jsonschema.Extend(jsonschema.NewIntegerSchema()).
			Format(jsonschema.FormatInt64).
			Description("Base 10 integer.").
			Build(),
	}
}

// Bool returns the codec registered as "bool".
func Bool() Codec {
	return Codec{
		Decode: DecodeBool,
		Encode: EncodeBool,
		Schema: jsonschema.Extend(jsonschema.NewBooleanSchema()).
			Description("Boolean as read by strconv.ParseBool.").
			Build(),
	}
}

// Derive returns a codec that decodes with base and then converts the
// value with fn. Returning false from fn fails the decode. Encoding is
// left to base.
//
//	type ProductID int
//	param.Derive(param.Number(), func(v any) (ProductID, bool) {
//		return ProductID(v.(int)), true
//	})
func Derive[T any](base Codec, fn func(any) (T, bool)) Codec {
	decode := base.Decode
	return Codec{
		Decode: func(path string, index int) (any, int, bool) {
			v, next, ok := decode(path, index)
			if !ok {
				return nil, index, false
			}

			t, ok := fn(v)
			if !ok {
				return nil, index, false
			}
			return t, next, true
		},
		Encode: base.Encode,
		Schema: base.Schema,
	}
}

// TextCodec returns a codec for a type implementing
// [encoding.TextUnmarshaler]. Decoded values are of type T, encoding
// requires T or *T to implement [encoding.TextMarshaler].
func TextCodec[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() Codec {
	return Codec{
		Decode: func(path string, index int) (any, int, bool) {
			s, next := Segment(path, index)

			var v T
			if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
				return nil, index, false
			}
			return v, next, true
		},
		Encode: func(value any) (string, error) {
			switch v := value.(type) {
			case encoding.TextMarshaler:
				b, err := v.MarshalText()
				return string(b), err
			case T:
				if m, ok := any(&v).(encoding.TextMarshaler); ok {
					b, err := m.MarshalText()
					return string(b), err
				}
			}
			return "", fmt.Errorf("%w: %T does not implement encoding.TextMarshaler",
				ErrInvalidParamType, value,
			)
		},
		Schema: jsonschema.NewStringSchema(),
	}
}
