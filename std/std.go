// Package std serves [pathroute] declarations with net/http.
package std

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"sync"
	"sync/atomic"

	"github.com/zhamlin/pathroute"
	"github.com/zhamlin/pathroute/internal/color"
	"github.com/zhamlin/pathroute/param"
)

var (
	ErrDuplicateKey   = errors.New("route key already registered")
	ErrNilDeclaration = errors.New("nil declaration")
	ErrNilHandler     = errors.New("nil handler")
)

type matchKey struct{}

// FromRequest returns the match stored on the request by [Mux].
func FromRequest(r *http.Request) (pathroute.Match, bool) {
	m, ok := r.Context().Value(matchKey{}).(pathroute.Match)
	return m, ok
}

// WithMatch returns a copy of ctx carrying m.
func WithMatch(ctx context.Context, m pathroute.Match) context.Context {
	return context.WithValue(ctx, matchKey{}, m)
}

type table struct {
	routes   *pathroute.Combination
	handlers map[string]http.Handler
}

// Mux dispatches requests to the handler of the first declaration
// matching the request path.
type Mux struct {
	mu    sync.Mutex
	table atomic.Pointer[table]

	// Called when there is an error while registering handlers.
	ErrorSink func(error)
	// Used when no declaration matches the request path.
	NotFound http.Handler
	Logger   *slog.Logger
	Metrics  *Metrics
	// Render route errors with terminal colors.
	Colored bool
}

// New returns a ready to use [Mux] with the default settings.
func New() *Mux {
	return &Mux{
		ErrorSink: func(err error) {
			fmt.Println(err.Error())
			os.Exit(1)
		},
		NotFound: http.HandlerFunc(http.NotFound),
		Logger:   slog.Default(),
	}
}

func (m *Mux) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.Default()
	}
	return m.Logger
}

type coloredError struct {
	err    *pathroute.RouteError
	colors color.Colors
}

func (c coloredError) Error() string {
	return c.err.ErrorWithColor(c.colors)
}

func (c coloredError) Unwrap() error {
	return c.err
}

func (m *Mux) handleError(err error) {
	if m.Colored {
		var routeErr *pathroute.RouteError
		if errors.As(err, &routeErr) {
			err = coloredError{err: routeErr, colors: color.Default}
		}
	}

	if m.ErrorSink != nil {
		m.ErrorSink(err)
	}
}

// Handle registers handler for the declaration. Declarations are tried in
// the order they were registered.
func (m *Mux) Handle(decl pathroute.Declaration, handler http.Handler) {
	if decl == nil {
		m.handleError(ErrNilDeclaration)
		return
	}

	key := decl.Key()
	if handler == nil {
		m.handleError(fmt.Errorf("%w: %s", ErrNilHandler, key))
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := &table{}

	if cur := m.table.Load(); cur != nil {
		if _, has := cur.handlers[key]; has {
			m.handleError(fmt.Errorf("%w: %s", ErrDuplicateKey, key))
			return
		}
		next.routes = cur.routes.Add(decl)
		next.handlers = maps.Clone(cur.handlers)
	} else {
		next.routes = pathroute.NewCombination(decl)
		next.handlers = map[string]http.Handler{}
	}

	next.handlers[key] = handler
	m.table.Store(next)
}

// HandleFunc compiles the pattern and registers fn for it.
func (m *Mux) HandleFunc(pattern string, fn http.HandlerFunc, opts ...pathroute.Option) {
	route, err := pathroute.Compile(pattern, opts...)
	if err != nil {
		m.handleError(err)
		return
	}
	m.Handle(route, fn)
}

func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	t := m.table.Load()
	if t != nil {
		if match, ok := t.routes.Match(r.URL.Path); ok {
			if handler, has := t.handlers[match.Key]; has {
				m.Metrics.matched(match.Key)
				handler.ServeHTTP(w, r.WithContext(WithMatch(r.Context(), match)))
				return
			}
			m.logger().Error("matched key has no handler", "path", r.URL.Path, "key", match.Key)
		}
	}

	m.Metrics.missed()
	m.logger().Debug("no route matched", "path", r.URL.Path)

	notFound := m.NotFound
	if notFound == nil {
		notFound = http.HandlerFunc(http.NotFound)
	}
	notFound.ServeHTTP(w, r)
}

// Param returns the named param of the request match as a string, or an
// empty string if there is none.
func (m *Mux) Param(name string, r *http.Request) string {
	match, ok := FromRequest(r)
	if !ok {
		return ""
	}

	v, has := match.Params[name]
	if !has {
		return ""
	}
	s, _ := param.EncodeString(v)
	return s
}

// Link builds the path of the declaration registered with key.
func (m *Mux) Link(key string, params param.Map) (string, error) {
	t := m.table.Load()
	if t == nil {
		return "", fmt.Errorf("%w: %q", pathroute.ErrUnknownKey, key)
	}

	path, err := t.routes.Link(key, params)
	if err != nil {
		m.logger().Error("building link", "key", key, "error", err)
		return "", err
	}
	return path, nil
}

// Routes returns the registered declarations in order.
func (m *Mux) Routes() []pathroute.Declaration {
	t := m.table.Load()
	if t == nil {
		return nil
	}
	return t.routes.Declarations()
}
