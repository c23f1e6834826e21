package jsonschema_test

import (
	"testing"

	"github.com/zhamlin/pathroute/internal/test"
	"github.com/zhamlin/pathroute/jsonschema"
)

func TestForParams(t *testing.T) {
	schema := jsonschema.ForParams(
		[]string{"userId", "category"},
		map[string]jsonschema.Schema{
			"userId":   jsonschema.NewIntegerSchema(),
			"category": jsonschema.NewStringSchema(),
		},
	)

	want := `{
		"type": "object",
		"properties": {
			"userId": {"type": "integer"},
			"category": {"type": "string"}
		},
		"required": ["userId", "category"]
	}`
	test.MatchAsJSON(t, schema, want)
}

func TestBuilder_Extend(t *testing.T) {
	base := jsonschema.NewIntegerSchema()
	extended := jsonschema.Extend(base).Minimum(1).Build()

	test.MatchAsJSON(t, base, `{"type": "integer"}`)
	test.MatchAsJSON(t, extended, `{"type": "integer", "minimum": 1}`)
}

func TestBuilder_Reference(t *testing.T) {
	schema := jsonschema.NewBuilder().Reference("#/components/schemas/ProductId")
	test.MatchAsJSON(t, schema, `{"$ref": "#/components/schemas/ProductId"}`)
}

func TestSchema_PropertyPanics(t *testing.T) {
	schema := jsonschema.ForParams(nil, nil)
	test.Panics(t, func() {
		schema.Property("missing")
	})
}

func TestBuilder_Annotations(t *testing.T) {
	number := jsonschema.Extend(jsonschema.NewIntegerSchema()).
		Format(jsonschema.FormatInt64).
		Description(`
			Base 10 integer.
		`).
		Build()
	test.MatchAsJSON(t, number, `{"type": "integer", "format": "int64", "description": "Base 10 integer."}`)

	sku := jsonschema.Extend(jsonschema.NewStringSchema()).
		Pattern("^sku-").
		MinLength(5).
		Build()
	test.MatchAsJSON(t, sku, `{"type": "string", "pattern": "^sku-", "minLength": 5}`)
}
