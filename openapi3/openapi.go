package openapi3

import (
	"net/http"

	"github.com/sv-tools/openapi"
)

type Info = openapi.Info

func New() *OpenAPI {
	openAPI := &openapi.OpenAPI{}
	openAPI.Info = NewExtendable(&Info{})
	openAPI.OpenAPI = "3.1.1"

	return &OpenAPI{
		OpenAPI: openAPI,
	}
}

type OpenAPI struct {
	*openapi.OpenAPI
}

type PathItem struct {
	*openapi.PathItem
}

func NewPathItem() PathItem {
	return PathItem{
		PathItem: &openapi.PathItem{},
	}
}

// operationMethods are the methods a [PathItem] holds operations for.
var operationMethods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodPost,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
}

func (p PathItem) GetOperation(method string) (Operation, bool) {
	var o *openapi.Extendable[openapi.Operation]

	switch method {
	case http.MethodGet:
		o = p.Get
	case http.MethodPut:
		o = p.Put
	case http.MethodPost:
		o = p.Post
	case http.MethodPatch:
		o = p.Patch
	case http.MethodDelete:
		o = p.Delete
	case http.MethodHead:
		o = p.Head
	}

	var op Operation
	if o != nil {
		op = Operation{Operation: o.Spec}
	}

	return op, op.Operation != nil
}

func (p PathItem) SetOperation(method string, operation Operation) {
	op := NewExtendable(operation.Operation)

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodPost:
		p.Post = op
	case http.MethodDelete:
		p.Delete = op
	case http.MethodHead:
		p.Head = op
	}
}

func (o OpenAPI) GetPath(name string) (PathItem, bool) {
	if o.Paths == nil {
		return PathItem{}, false
	}

	p, has := o.Paths.Spec.Paths[name]
	if has {
		return PathItem{p.Spec.Spec}, true
	}

	return PathItem{}, false
}

// SetPath overrides any existing paths if they exist, if not
// it creates the pathItem.
func (o OpenAPI) SetPath(name string, pathItem PathItem) {
	if o.Paths == nil {
		o.Paths = openapi.NewPaths()
		o.Paths.Spec.Paths = map[string]*openapi.RefOrSpec[openapi.Extendable[openapi.PathItem]]{}
	}

	item := NewExtendable(pathItem.PathItem)
	o.Paths.Spec.Paths[name] = openapi.NewRefOrSpec[openapi.Extendable[openapi.PathItem]](item)
}

func NewExtendable[T any](t *T) *openapi.Extendable[T] {
	return openapi.NewExtendable(t)
}
