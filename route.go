// Package pathroute compiles route patterns like
// /users/{userId:number}/categories/:category into declarations that
// match request paths into typed params and build paths back from them.
//
// Declarations are combined with a [Combination], which tries each one
// in the order they were added and returns the first match.
package pathroute

import (
	"fmt"
	"strings"

	"github.com/zhamlin/pathroute/jsonschema"
	"github.com/zhamlin/pathroute/param"
	"github.com/zhamlin/pathroute/pattern"
)

const paramsSchemaName = "params.json"

// Option configures how a pattern is compiled.
type Option func(*config)

type config struct {
	registry param.Registry
	validate bool
}

// WithRegistry sets the codecs used to decode and encode params.
// Defaults to [param.Default].
func WithRegistry(r param.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithCodec registers codec under tag on top of the current registry.
func WithCodec(tag string, codec param.Codec) Option {
	return func(c *config) {
		c.registry = c.registry.With(tag, codec)
	}
}

// WithValidation validates decoded params against the codec schemas.
// Params that do not validate make the path not match.
func WithValidation() Option {
	return func(c *config) {
		c.validate = true
	}
}

// Route is a compiled pattern. It is immutable and safe for concurrent use.
type Route struct {
	pattern string
	tokens  []pattern.Token
	// codecs is parallel to tokens, literal positions are left empty.
	codecs    []param.Codec
	names     []string
	schema    jsonschema.Schema
	validator *jsonschema.Validator
}

var _ Declaration = (*Route)(nil)

// Compile tokenizes p once and resolves the codec of every param.
//
// The following are reported as a [*RouteError]:
//   - [ErrUnknownType]: a type tag with no codec in the registry.
//   - [ErrInvalidCodec]: a codec without Decode or Encode.
//   - [ErrDuplicateParam]: a param name used twice.
//   - [ErrEmptyParamName]: a param without a name, such as "/a:/b" or
//     "/a/{}". These compile to a param named "" when only tokenized with
//     [pattern.Prepare].
//
// Malformed patterns such as an unclosed "{" are not errors, they
// compile to the tokens [pattern.Prepare] returns.
func Compile(p string, opts ...Option) (*Route, error) {
	cfg := config{registry: param.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Route{
		pattern: p,
		tokens:  pattern.Prepare(p),
	}
	r.codecs = make([]param.Codec, len(r.tokens))

	schemas := map[string]jsonschema.Schema{}
	for i, tok := range r.tokens {
		if !tok.IsParam() {
			continue
		}

		if tok.Name == "" {
			return nil, newRouteError(p, tok, ErrEmptyParamName)
		}

		if _, has := schemas[tok.Name]; has {
			return nil, newRouteError(p, tok, fmt.Errorf("%w: %q", ErrDuplicateParam, tok.Name))
		}

		codec, has := cfg.registry.Lookup(tok.Type)
		if !has {
			return nil, newRouteError(p, tok, fmt.Errorf("%w: %q", ErrUnknownType, tok.Type))
		}

		if !codec.Valid() {
			return nil, newRouteError(p, tok, fmt.Errorf("%w: %q", ErrInvalidCodec, tok.Type))
		}

		r.codecs[i] = codec
		r.names = append(r.names, tok.Name)
		schemas[tok.Name] = codec.Schema
	}

	r.schema = jsonschema.ForParams(r.names, schemas)

	if cfg.validate {
		v := jsonschema.NewValidator()
		if err := v.AddSchema(paramsSchemaName, r.schema); err != nil {
			return nil, newRouteError(p, pattern.Token{}, err)
		}
		r.validator = v
	}

	return r, nil
}

// MustCompile is like [Compile] but panics if the pattern cannot be compiled.
func MustCompile(p string, opts ...Option) *Route {
	r, err := Compile(p, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Key returns the pattern the route was compiled from.
func (r *Route) Key() string {
	return r.pattern
}

func (r *Route) String() string {
	return r.pattern
}

// Tokens returns a copy of the compiled tokens.
func (r *Route) Tokens() []pattern.Token {
	return append([]pattern.Token(nil), r.tokens...)
}

// ParamNames returns the param names in pattern order.
func (r *Route) ParamNames() []string {
	return append([]string(nil), r.names...)
}

// Schema returns the object schema of the route params.
func (r *Route) Schema() jsonschema.Schema {
	return r.schema
}

// Match matches the whole of path against the route.
//
// Tokens are consumed in order from a cursor starting at 0. A literal
// must equal the next len(text) bytes, on a mismatch the scan goes on
// with the cursor moved past it. A param is read by its codec, a failed
// decode leaves the cursor in place. The path matches when every token
// matched and the cursor ended exactly at the end of path.
func (r *Route) Match(path string) (Match, bool) {
	params, ok := r.parse(path)
	if !ok {
		return Match{}, false
	}
	return Match{Key: r.pattern, Params: params}, true
}

func (r *Route) parse(path string) (param.Map, bool) {
	index := 0
	matched := true
	params := make(param.Map, len(r.names))

	for i, tok := range r.tokens {
		if !tok.IsParam() {
			end := index + len(tok.Text)
			if end > len(path) || path[index:end] != tok.Text {
				matched = false
			}
			index = end
			continue
		}

		// a literal already ran past the end, codecs only see valid offsets
		if index > len(path) {
			matched = false
			continue
		}

		value, next, ok := r.codecs[i].Decode(path, index)
		if !ok {
			matched = false
			continue
		}

		params[tok.Name] = value
		index = next
	}

	if index != len(path) || !matched {
		return nil, false
	}

	if r.validator != nil {
		if err := r.validator.ValidateValue(paramsSchemaName, params); err != nil {
			return nil, false
		}
	}

	return params, true
}

// Build writes the pattern with every param replaced by the encoded
// value from params. A param without a value returns [ErrMissingParam].
func (r *Route) Build(params param.Map) (string, error) {
	var sb strings.Builder

	for i, tok := range r.tokens {
		if !tok.IsParam() {
			sb.WriteString(tok.Text)
			continue
		}

		value, has := params[tok.Name]
		if !has {
			return "", fmt.Errorf("%s: %w: %q", r.pattern, ErrMissingParam, tok.Name)
		}

		s, err := r.codecs[i].Encode(value)
		if err != nil {
			return "", fmt.Errorf("%s: param %q: %w", r.pattern, tok.Name, err)
		}
		sb.WriteString(s)
	}

	return sb.String(), nil
}
