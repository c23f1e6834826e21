package param

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sv-tools/openapi"
	"github.com/zhamlin/pathroute/jsonschema"
)

type Parameter struct {
	*openapi.Parameter
}

func New() Parameter {
	return Parameter{
		Parameter: &openapi.Parameter{},
	}
}

func (p *Parameter) SetSchema(schema jsonschema.Schema) {
	p.Schema = openapi.NewRefOrSpec[openapi.Schema](schema.Schema)
}

// https://spec.openapis.org/oas/v3.1.0#styleValues
type Style string

const (
	StyleMatrix Style = "matrix"
	StyleLabel  Style = "label"
	StyleSimple Style = "simple"
	StyleForm   Style = "form"

	StyleSpaceDelimited Style = "spaceDelimited"
	StylePipeDelimited  Style = "pipeDelimited"
	StyleDeepObject     Style = "deepObject"
)

type Location string

const (
	LocationPath   Location = openapi.InPath
	LocationQuery  Location = openapi.InQuery
	LocationHeader Location = openapi.InHeader
	LocationCookie Location = openapi.InCookie
)

var (
	ErrInvalidStyle    = errors.New("invalid parameter style")
	ErrInvalidLocation = errors.New("invalid parameter location")
)

// DataType represents the parameter data type.
type DataType string

const (
	DataTypePrimitive DataType = "primitive"
	DataTypeArray     DataType = "array"
	DataTypeObject    DataType = "object"
)

func schemaDataType(schema *openapi.Schema) DataType {
	if schema == nil || schema.Type == nil {
		return DataTypePrimitive
	}

	for _, typ := range *schema.Type {
		switch typ {
		case openapi.ObjectType:
			return DataTypeObject
		case openapi.ArrayType:
			return DataTypeArray
		}
	}
	return DataTypePrimitive
}

type styleRule struct {
	types []DataType
	in    []Location
}

var allTypes = []DataType{DataTypePrimitive, DataTypeArray, DataTypeObject}

var styleRules = map[Style]styleRule{
	StyleMatrix: {types: allTypes, in: []Location{LocationPath}},
	StyleLabel:  {types: allTypes, in: []Location{LocationPath}},
	StyleSimple: {types: allTypes, in: []Location{LocationPath, LocationHeader}},
	StyleForm:   {types: allTypes, in: []Location{LocationQuery, LocationCookie}},

	StyleSpaceDelimited: {types: []DataType{DataTypeArray, DataTypeObject}, in: []Location{LocationQuery}},
	StylePipeDelimited:  {types: []DataType{DataTypeArray, DataTypeObject}, in: []Location{LocationQuery}},
	StyleDeepObject:     {types: []DataType{DataTypeObject}, in: []Location{LocationQuery}},
}

// Validate reports whether the parameter style can be used in its
// location with its schema type.
func (p Parameter) Validate() error {
	dataType := DataTypePrimitive
	if p.Schema != nil {
		dataType = schemaDataType(p.Schema.Spec)
	}

	rule, has := styleRules[Style(p.Style)]
	if !has {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, p.Style)
	}

	if !slices.Contains(rule.in, Location(p.In)) {
		return fmt.Errorf("%w: style %q in %q", ErrInvalidLocation, p.Style, p.In)
	}

	if !slices.Contains(rule.types, dataType) {
		return fmt.Errorf("%w: style %q with type %q", ErrInvalidStyle, p.Style, dataType)
	}

	return nil
}

// ForPath returns a required path parameter in the simple style, the
// style of a {name} segment in a path template.
func ForPath(name string, schema jsonschema.Schema) (Parameter, error) {
	p := New()
	p.Name = name
	p.In = string(LocationPath)
	p.Style = string(StyleSimple)
	// https://spec.openapis.org/oas/v3.1.0#parameter-object
	// Required must be true for path params.
	p.Required = true
	p.SetSchema(schema)

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("param %q: %w", name, err)
	}
	return p, nil
}
