package openapi3

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/zhamlin/pathroute"
	"github.com/zhamlin/pathroute/jsonschema"
	"github.com/zhamlin/pathroute/openapi3/param"
	"github.com/zhamlin/pathroute/pattern"
)

var (
	ErrDuplicatePath     = errors.New("path already exists in the spec")
	ErrUnsupportedMethod = errors.New("unsupported operation method")
)

// Describer is implemented by declarations that expose their tokens and
// parameter schema, such as [pathroute.Route].
type Describer interface {
	pathroute.Declaration
	Tokens() []pattern.Token
	Schema() jsonschema.Schema
}

// FromDeclarations returns a spec with a GET operation for every
// declaration that implements [Describer]. Other declarations are skipped.
func FromDeclarations(info Info, decls ...pathroute.Declaration) (*OpenAPI, error) {
	spec := New()
	spec.Info = NewExtendable(&info)

	for _, decl := range decls {
		d, ok := decl.(Describer)
		if !ok {
			continue
		}

		if err := spec.AddDeclaration(d); err != nil {
			return nil, err
		}
	}

	return spec, nil
}

// AddDeclaration adds the declaration's path template to the spec with
// one operation per method, GET when no method is given. The GET
// operation id is the declaration key, other methods prefix the key with
// the method.
func (o OpenAPI) AddDeclaration(d Describer, methods ...string) error {
	if len(methods) == 0 {
		methods = []string{http.MethodGet}
	}

	tokens := d.Tokens()
	path := pattern.Template(tokens)

	if _, has := o.GetPath(path); has {
		return fmt.Errorf("%s: %w: %s", d.Key(), ErrDuplicatePath, path)
	}

	params, err := pathParams(d, tokens)
	if err != nil {
		return err
	}

	item := NewPathItem()
	for _, method := range methods {
		if !slices.Contains(operationMethods, method) {
			return fmt.Errorf("%s: %w: %q", d.Key(), ErrUnsupportedMethod, method)
		}

		op := NewOperation()
		op.OperationID = d.Key()
		if method != http.MethodGet {
			op.OperationID = method + " " + d.Key()
		}

		for _, p := range params {
			op.AddParameter(p)
		}
		item.SetOperation(method, op)
	}
	o.SetPath(path, item)

	return nil
}

func pathParams(d Describer, tokens []pattern.Token) ([]param.Parameter, error) {
	var params []param.Parameter

	schema := d.Schema()
	for tok := range pattern.Params(tokens) {
		paramSchema := jsonschema.New()
		if prop, has := schema.Properties[tok.Name]; has && prop.Spec != nil {
			paramSchema.Schema = *prop.Spec
		}

		p, err := param.ForPath(tok.Name, paramSchema)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Key(), err)
		}
		params = append(params, p)
	}

	return params, nil
}
