package jsonschema

import "github.com/sv-tools/openapi"

type Format string

const (
	FormatInt64 Format = openapi.Int64Format
)
