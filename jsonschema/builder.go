package jsonschema

import (
	"strings"

	"github.com/sv-tools/openapi"
	"github.com/zhamlin/pathroute/internal/stringz"
)

func newBuilderWithSchema(schema *openapi.Schema) Builder {
	return Builder{
		Schema:        schema,
		StringBuilder: StringBuilder{schema},
		NumberBuilder: NumberBuilder{schema},
		ObjectBuilder: ObjectBuilder{schema},
	}
}

// Builder provides functions to build a json schema.
type Builder struct {
	StringBuilder
	NumberBuilder
	ObjectBuilder

	Schema *openapi.Schema
}

// NewBuilder returns an empty [Builder].
func NewBuilder() Builder {
	s := New()
	return newBuilderWithSchema(&s.Schema)
}

// Extend returns a [Builder] working on a copy of schema.
func Extend(schema Schema) Builder {
	s := schema.Schema
	return newBuilderWithSchema(&s)
}

// Reference will set the schema to be a $ref item pointing
// to the provided ref.
func (b Builder) Reference(ref string) Schema {
	schema := New()
	schema.Schema = *b.Schema
	schema.refPath = ref
	return schema
}

func (b Builder) Build() Schema {
	schema := New()
	schema.Schema = *b.Schema
	return schema
}

func (b Builder) Type(typs ...Type) Builder {
	types := make([]string, 0, len(typs))
	for _, typ := range typs {
		types = append(types, string(typ))
	}

	b.Schema.Type = openapi.NewSingleOrArray(types...)
	return b
}

// Format sets the format annotation, such as int64 for integers.
func (b Builder) Format(value Format) Builder {
	b.Schema.Format = string(value)
	return b
}

func (b Builder) Description(desc string) Builder {
	b.Schema.Description = strings.Trim(stringz.TrimLinesSpace(desc), "\n")
	return b
}

// ObjectBuilder provides functions for object related options on the schema.
type ObjectBuilder struct {
	Schema *openapi.Schema
}

func (o ObjectBuilder) Build() Schema {
	schema := New()
	schema.Schema = *o.Schema
	return schema
}

func (o ObjectBuilder) Property(name string, schema Schema) ObjectBuilder {
	if o.Schema.Properties == nil {
		o.Schema.Properties = map[string]*openapi.RefOrSpec[openapi.Schema]{}
	}

	if schema.refPath != "" {
		o.Schema.Properties[name] = openapi.NewRefOrSpec[openapi.Schema](schema.refPath)
	} else {
		o.Schema.Properties[name] = openapi.NewRefOrSpec[openapi.Schema](schema.Schema)
	}
	return o
}

func (o ObjectBuilder) Required(vals ...string) ObjectBuilder {
	o.Schema.Required = append(o.Schema.Required, vals...)
	return o
}

// StringBuilder provides functions for string related options on the schema.
type StringBuilder struct {
	Schema *openapi.Schema
}

func (s StringBuilder) Build() Schema {
	schema := New()
	schema.Schema = *s.Schema
	return schema
}

func (s StringBuilder) Pattern(value string) StringBuilder {
	s.Schema.Pattern = value
	return s
}

func (s StringBuilder) MinLength(n int) StringBuilder {
	s.Schema.MinLength = &n
	return s
}

// NumberBuilder provides functions for number related options on the schema.
type NumberBuilder struct {
	Schema *openapi.Schema
}

func (nb NumberBuilder) Build() Schema {
	schema := New()
	schema.Schema = *nb.Schema
	return schema
}

func (nb NumberBuilder) Minimum(n int) NumberBuilder {
	nb.Schema.Minimum = &n
	return nb
}
