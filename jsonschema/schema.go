package jsonschema

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/sv-tools/openapi"
)

// Schema represents a json schema object.
//
// https://json-schema.org/overview/what-is-jsonschema
type Schema struct {
	openapi.Schema

	// if set the schema will be marshalled as reference
	refPath string
}

// New returns an empty [Schema].
func New() Schema {
	return Schema{}
}

// MarshalJSON implements the [json.Marshaler] interface.
func (s Schema) MarshalJSON() ([]byte, error) {
	if ref := s.refPath; ref != "" {
		return json.Marshal(openapi.NewRefOrSpec[openapi.Schema](ref))
	}
	return json.Marshal(s.Schema)
}

// Property returns a [Builder] for the property matching
// the supplied name. The returned builder will modify the
// schema directly.
//
// This function panics if no property exists on the schema with the given
// name.
func (s *Schema) Property(name string) Builder {
	p, has := s.Properties[name]
	if !has {
		keys := slices.Sorted(maps.Keys(s.Properties))
		panic(fmt.Sprintf("property does not exist: %s\nhave: %v", name, keys))
	}

	if p.Spec == nil {
		panic(fmt.Sprintf("empty spec for %q, references(%v) not supported", name, p.Ref))
	}

	return newBuilderWithSchema(p.Spec)
}

// NewStringSchema returns a schema for string values.
func NewStringSchema() Schema {
	return NewBuilder().Type(TypeString).Build()
}

// NewIntegerSchema returns a schema for integer values.
func NewIntegerSchema() Schema {
	return NewBuilder().Type(TypeInteger).Build()
}

// NewBooleanSchema returns a schema for boolean values.
func NewBooleanSchema() Schema {
	return NewBuilder().Type(TypeBoolean).Build()
}

// ForParams returns an object schema with one required property per name.
// Names without an entry in schemas accept any value.
func ForParams(names []string, schemas map[string]Schema) Schema {
	obj := NewBuilder().Type(TypeObject).ObjectBuilder
	for _, name := range names {
		obj = obj.Property(name, schemas[name]).Required(name)
	}
	return obj.Build()
}
