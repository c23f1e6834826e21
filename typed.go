package pathroute

import (
	"github.com/zhamlin/pathroute/param"
)

// Typed binds the params of a declaration to the struct T. Fields are
// named by the namer, or by a name tag:
//
//	type CategoryParams struct {
//		UserID   int `name:"userId"`
//		Category string
//	}
type Typed[T any] struct {
	decl  Declaration
	namer param.Namer
}

// NewTyped returns a [Typed] using [param.NamerLowerFirst] to name fields.
func NewTyped[T any](decl Declaration) Typed[T] {
	return Typed[T]{
		decl:  decl,
		namer: param.NamerLowerFirst,
	}
}

// WithNamer returns a copy using namer to name fields.
func (t Typed[T]) WithNamer(namer param.Namer) Typed[T] {
	t.namer = namer
	return t
}

func (t Typed[T]) Declaration() Declaration {
	return t.decl
}

func (t Typed[T]) Key() string {
	return t.decl.Key()
}

// Match matches path and binds the params to a T. The error is only set
// when the path matched but the params do not fit T.
func (t Typed[T]) Match(path string) (T, bool, error) {
	var zero T

	m, ok := t.decl.Match(path)
	if !ok {
		return zero, false, nil
	}

	v, err := param.Bind[T](m.Params, t.namer)
	if err != nil {
		return zero, true, err
	}
	return v, true, nil
}

// Build builds the path from the fields of v.
func (t Typed[T]) Build(v T) (string, error) {
	params, err := param.FromStruct(v, t.namer)
	if err != nil {
		return "", err
	}
	return t.decl.Build(params)
}

// Bind binds the params of a match to a T with [param.NamerLowerFirst].
func Bind[T any](m Match) (T, error) {
	return param.Bind[T](m.Params, param.NamerLowerFirst)
}
