package param_test

import (
	"testing"

	"github.com/zhamlin/pathroute/internal/test"
	"github.com/zhamlin/pathroute/param"
)

func TestDefault(t *testing.T) {
	r := param.Default()
	test.MatchAsJSON(t, r.Tags(), []string{"bool", "number", "string"})

	for _, tag := range r.Tags() {
		c, has := r.Lookup(tag)
		test.True(t, has, tag)
		test.True(t, c.Valid(), tag)
	}
}

func TestRegistry_WithDoesNotModify(t *testing.T) {
	base := param.Default()
	extended := base.With("ProductId", param.Number())

	_, has := base.Lookup("ProductId")
	test.Equal(t, has, false)

	_, has = extended.Lookup("ProductId")
	test.Equal(t, has, true)

	test.Equal(t, base.Len(), 3)
	test.Equal(t, extended.Len(), 4)
}

func TestRegistry_WithReplaces(t *testing.T) {
	r := param.Default().With(param.TypeString, param.Bool())

	c, has := r.Lookup(param.TypeString)
	test.True(t, has)

	_, _, ok := c.Decode("/cats", 1)
	test.Equal(t, ok, false)
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	codecs := map[string]param.Codec{"a": param.String()}
	r := param.NewRegistry(codecs)
	codecs["b"] = param.Number()

	_, has := r.Lookup("b")
	test.Equal(t, has, false)
}

func TestRegistry_Zero(t *testing.T) {
	var r param.Registry

	_, has := r.Lookup(param.TypeString)
	test.Equal(t, has, false)
	test.Equal(t, r.With("x", param.String()).Len(), 1)
}
