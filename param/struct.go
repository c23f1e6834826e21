package param

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/zhamlin/pathroute/internal/color"
	"github.com/zhamlin/pathroute/internal/structs"
)

var (
	ErrNonStructArg  = errors.New("argument should be a struct")
	ErrMissingValue  = errors.New("no value for param")
	ErrNotAssignable = errors.New("value cannot be assigned to field")
)

// InvalidFieldError reports a struct field that could not be bound.
type InvalidFieldError struct {
	Struct reflect.Type
	Field  reflect.StructField
	Param  string
	Err    error
}

func (e InvalidFieldError) Unwrap() error {
	return e.Err
}

func (e InvalidFieldError) Error() string {
	return fmt.Sprintf("%s.%s (param %q): %v", e.Struct.Name(), e.Field.Name, e.Param, e.Err)
}

// ErrorWithColor renders the struct definition with the field underlined.
func (e InvalidFieldError) ErrorWithColor(c color.Colors) string {
	msg := fmt.Sprintf("param %q: %v", e.Param, e.Err)
	return structs.Render(e.Struct, e.Field.Name, msg, c)
}

type boundField struct {
	index int
	name  string
}

func structFields(typ reflect.Type, namer Namer) ([]boundField, error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got: %q", ErrNonStructArg, typ)
	}

	fields := make([]boundField, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		if name := NameFromField(field, namer); name != "" {
			fields = append(fields, boundField{index: i, name: name})
		}
	}
	return fields, nil
}

type kindFamily uint8

const (
	familyNone kindFamily = iota
	familyInt
	familyUint
	familyFloat
	familyString
	familyBool
)

func familyOf(k reflect.Kind) kindFamily {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return familyInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return familyUint
	case reflect.Float32, reflect.Float64:
		return familyFloat
	case reflect.String:
		return familyString
	case reflect.Bool:
		return familyBool
	}
	return familyNone
}

func isNumber(f kindFamily) bool {
	return f == familyInt || f == familyUint || f == familyFloat
}

// fitsNumber reports whether the number v can be stored in dst without
// losing its value. Floats never fill integer fields.
func fitsNumber(dst, v reflect.Value) bool {
	switch familyOf(v.Kind()) {
	case familyInt:
		n := v.Int()
		switch familyOf(dst.Kind()) {
		case familyInt:
			return !dst.OverflowInt(n)
		case familyUint:
			return n >= 0 && !dst.OverflowUint(uint64(n))
		case familyFloat:
			return !dst.OverflowFloat(float64(n))
		}
	case familyUint:
		n := v.Uint()
		switch familyOf(dst.Kind()) {
		case familyInt:
			return n <= math.MaxInt64 && !dst.OverflowInt(int64(n))
		case familyUint:
			return !dst.OverflowUint(n)
		case familyFloat:
			return !dst.OverflowFloat(float64(n))
		}
	case familyFloat:
		if familyOf(dst.Kind()) == familyFloat {
			return !dst.OverflowFloat(v.Float())
		}
	}
	return false
}

// assign sets dst to value. Besides plain assignment it converts between
// types of the same kind, so an int decoded by the number codec fills an
// int64 or a named integer field. Numbers only convert when the value
// fits the field, and never to or from strings.
func assign(dst reflect.Value, value any) error {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return ErrNotAssignable
	}

	if v.Type().AssignableTo(dst.Type()) {
		dst.Set(v)
		return nil
	}

	from, to := familyOf(v.Kind()), familyOf(dst.Kind())
	switch {
	case isNumber(from) && isNumber(to):
		if !fitsNumber(dst, v) {
			return fmt.Errorf("%w: %v does not fit %s", ErrNotAssignable, value, dst.Type())
		}
	case from == familyNone || from != to:
		return fmt.Errorf("%w: %T to %s", ErrNotAssignable, value, dst.Type())
	}

	if !v.CanConvert(dst.Type()) {
		return fmt.Errorf("%w: %T to %s", ErrNotAssignable, value, dst.Type())
	}
	dst.Set(v.Convert(dst.Type()))
	return nil
}

// Bind fills a new T from params. Every exported field not tagged
// name:"-" must have a value in params.
func Bind[T any](params Map, namer Namer) (T, error) {
	var result T

	v := reflect.ValueOf(&result).Elem()
	fields, err := structFields(v.Type(), namer)
	if err != nil {
		return result, err
	}

	for _, f := range fields {
		fieldErr := func(err error) InvalidFieldError {
			return InvalidFieldError{
				Struct: v.Type(),
				Field:  v.Type().Field(f.index),
				Param:  f.name,
				Err:    err,
			}
		}

		value, has := params[f.name]
		if !has {
			return result, fieldErr(ErrMissingValue)
		}

		if err := assign(v.Field(f.index), value); err != nil {
			return result, fieldErr(err)
		}
	}

	return result, nil
}

// FromStruct returns the exported fields of a struct, or pointer to one,
// as a [Map].
func FromStruct(value any, namer Namer) (Map, error) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: got: nil pointer", ErrNonStructArg)
		}
		v = v.Elem()
	}

	if !v.IsValid() {
		return nil, fmt.Errorf("%w: got: nil", ErrNonStructArg)
	}

	fields, err := structFields(v.Type(), namer)
	if err != nil {
		return nil, err
	}

	params := make(Map, len(fields))
	for _, f := range fields {
		params[f.name] = v.Field(f.index).Interface()
	}
	return params, nil
}
