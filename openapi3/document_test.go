package openapi3_test

import (
	"testing"

	"github.com/zhamlin/pathroute"
	"github.com/zhamlin/pathroute/internal/test"
	"github.com/zhamlin/pathroute/openapi3"
	"github.com/zhamlin/pathroute/param"
)

func TestFromDeclarations(t *testing.T) {
	users := pathroute.MustCompile("/users/{userId:number}/categories/:category")
	about := pathroute.MustCompile("/about")

	spec, err := openapi3.FromDeclarations(openapi3.Info{Title: "shop", Version: "1.0.0"}, users, about)
	test.NoError(t, err)

	want := `{
	  "/users/{userId}/categories/{category}": {
	    "get": {
	      "operationId": "/users/{userId:number}/categories/:category",
	      "parameters": [
	        {"name": "userId", "in": "path", "required": true, "style": "simple", "schema": {"type": "integer", "format": "int64", "description": "Base 10 integer."}},
	        {"name": "category", "in": "path", "required": true, "style": "simple", "schema": {"type": "string", "description": "Path segment up to the next slash."}}
	      ]
	    }
	  },
	  "/about": {
	    "get": {
	      "operationId": "/about"
	    }
	  }
	}`
	test.MatchAsJSON(t, spec.Paths, want)
	test.Equal(t, spec.Info.Spec.Title, "shop")
	test.Equal(t, spec.OpenAPI.OpenAPI, "3.1.1")
}

func TestFromDeclarations_SkipsDeclarationFunc(t *testing.T) {
	custom := pathroute.DeclarationFunc{
		Name: "test",
		MatchFunc: func(path string) (param.Map, bool) {
			return param.Map{}, path == "/test"
		},
		BuildFunc: func(param.Map) (string, error) {
			return "/test", nil
		},
	}
	home := pathroute.MustCompile("/")

	spec, err := openapi3.FromDeclarations(openapi3.Info{}, custom, home)
	test.NoError(t, err)

	_, has := spec.GetPath("/")
	test.True(t, has, "expected compiled route in spec")

	_, has = spec.GetPath("/test")
	test.True(t, !has, "expected custom declaration to be skipped")
}

func TestFromDeclarations_DuplicateTemplate(t *testing.T) {
	a := pathroute.MustCompile("/users/{id:number}")
	b := pathroute.MustCompile("/users/:id")

	_, err := openapi3.FromDeclarations(openapi3.Info{}, a, b)
	test.IsError(t, err, openapi3.ErrDuplicatePath)
}

func TestAddDeclaration_Operation(t *testing.T) {
	spec := openapi3.New()
	route := pathroute.MustCompile("/flags/{enabled:bool}")
	test.NoError(t, spec.AddDeclaration(route))

	item, has := spec.GetPath("/flags/{enabled}")
	test.True(t, has)

	op, has := item.GetOperation("GET")
	test.True(t, has)
	test.Equal(t, op.OperationID, route.Key())

	p, has := op.GetParameter("enabled", "path")
	test.True(t, has)
	test.MatchAsJSON(t, p.Schema, `{"type": "boolean", "description": "Boolean as read by strconv.ParseBool."}`)

	_, has = op.GetParameter("enabled", "query")
	test.True(t, !has)
}

func TestAddDeclaration_Methods(t *testing.T) {
	spec := openapi3.New()
	route := pathroute.MustCompile("/items/{id:number}")

	methods := []string{"GET", "PUT", "POST", "PATCH", "DELETE", "HEAD"}
	test.NoError(t, spec.AddDeclaration(route, methods...))

	item, has := spec.GetPath("/items/{id}")
	test.True(t, has)

	for _, method := range methods {
		op, has := item.GetOperation(method)
		test.True(t, has, method)

		want := method + " " + route.Key()
		if method == "GET" {
			want = route.Key()
		}
		test.Equal(t, op.OperationID, want)

		_, has = op.GetParameter("id", "path")
		test.True(t, has, method)
	}

	_, has = item.GetOperation("OPTIONS")
	test.True(t, !has)
}

func TestAddDeclaration_UnsupportedMethod(t *testing.T) {
	spec := openapi3.New()
	route := pathroute.MustCompile("/items/{id:number}")

	err := spec.AddDeclaration(route, "TRACE")
	test.IsError(t, err, openapi3.ErrUnsupportedMethod)

	_, has := spec.GetPath("/items/{id}")
	test.True(t, !has)
}
