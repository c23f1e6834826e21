// Package param decodes and encodes typed path parameters.
//
// A [Codec] is registered under a type tag in a [Registry]. Patterns
// refer to the tag, for example {id:number}, and the codec turns the
// matching part of a path into a value and back.
package param

import (
	"errors"

	"github.com/zhamlin/pathroute/jsonschema"
)

// Map holds decoded parameter values by parameter name.
type Map map[string]any

// DecodeFunc reads a value from path starting at index. It returns the
// value and the index just after the consumed characters, ok is false
// when the input at index cannot be decoded.
//
// A DecodeFunc should not consume past a '/' unless the type is meant to
// span path segments.
type DecodeFunc func(path string, index int) (value any, next int, ok bool)

// EncodeFunc writes value in a form the matching DecodeFunc reads back
// to an equal value.
type EncodeFunc func(value any) (string, error)

// Codec is the decode and encode pair registered for one type tag.
type Codec struct {
	Decode DecodeFunc
	Encode EncodeFunc
	// Schema describes decoded values. It is used for validation and
	// documentation, an empty schema accepts anything.
	Schema jsonschema.Schema
}

// Valid reports whether both functions are set.
func (c Codec) Valid() bool {
	return c.Decode != nil && c.Encode != nil
}

// ErrInvalidParamType represents a value whose type a codec cannot encode.
var ErrInvalidParamType = errors.New("invalid param type")
