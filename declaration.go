package pathroute

import "github.com/zhamlin/pathroute/param"

// Match is the result of matching a path, tagged with the key of the
// declaration that matched.
type Match struct {
	Key    string
	Params param.Map
}

// Param returns the value of the named param, nil if it is not set.
func (m Match) Param(name string) any {
	return m.Params[name]
}

// Declaration matches paths and builds them back from params.
//
// Match reports false when the path does not match, that is not an
// error. Build returns an error when params cannot produce a path.
type Declaration interface {
	Key() string
	Match(path string) (Match, bool)
	Build(params param.Map) (string, error)
}

// DeclarationFunc is a [Declaration] written by hand instead of compiled
// from a pattern.
type DeclarationFunc struct {
	Name      string
	MatchFunc func(path string) (param.Map, bool)
	BuildFunc func(params param.Map) (string, error)
}

func (d DeclarationFunc) Key() string {
	return d.Name
}

func (d DeclarationFunc) Match(path string) (Match, bool) {
	params, ok := d.MatchFunc(path)
	if !ok {
		return Match{}, false
	}
	return Match{Key: d.Name, Params: params}, true
}

func (d DeclarationFunc) Build(params param.Map) (string, error) {
	return d.BuildFunc(params)
}
