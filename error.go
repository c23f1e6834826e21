package pathroute

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zhamlin/pathroute/internal"
	"github.com/zhamlin/pathroute/internal/color"
	"github.com/zhamlin/pathroute/internal/stringz"
	"github.com/zhamlin/pathroute/pattern"
)

var (
	// ErrUnknownType is returned when a pattern uses a type tag without a codec.
	ErrUnknownType = errors.New("unknown param type")
	// ErrInvalidCodec is returned when a registered codec is missing a func.
	ErrInvalidCodec   = errors.New("codec must set Decode and Encode")
	ErrDuplicateParam = errors.New("duplicate param name")
	ErrEmptyParamName = errors.New("empty param name")

	// ErrMissingParam is returned by Build when a param has no value.
	ErrMissingParam = errors.New("missing param")
	// ErrUnknownKey is returned by Combination.Build when no declaration
	// has the key of the match.
	ErrUnknownKey = errors.New("no declaration for key")
)

// RouteError is returned when a pattern cannot be compiled.
type RouteError struct {
	Pattern string
	// Token that caused the error, zero when the error is about the
	// whole pattern.
	Token  pattern.Token
	Err    error
	Caller internal.CallerInfo
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

func (e *RouteError) Error() string {
	return e.ErrorWithColor(color.NoColors)
}

// ErrorWithColor renders the error with the offending token underlined.
func (e *RouteError) ErrorWithColor(c color.Colors) string {
	msg := &strings.Builder{}
	fmt.Fprintf(msg, "%serror%s: %v\n", c.Error, c.Reset, e.Err)
	fmt.Fprintln(msg)

	const prefix = "route: "
	fmt.Fprintln(msg, prefix+e.Pattern)

	if e.Token.End > e.Token.Start {
		mark := stringz.Underline(e.Token.Start, e.Token.End)
		fmt.Fprintf(msg, "%s%s%s%s\n", strings.Repeat(" ", len(prefix)), c.Mark, mark, c.Reset)
	}

	if !e.Caller.IsZero() {
		fmt.Fprintf(msg, "|> %s:%d\n", getParentAndBase(e.Caller.File), e.Caller.Line)
	}

	return strings.TrimSuffix(msg.String(), "\n")
}

func newRouteError(p string, tok pattern.Token, err error) *RouteError {
	return &RouteError{
		Pattern: p,
		Token:   tok,
		Err:     err,
		Caller:  internal.GetCaller(1),
	}
}

// getParentAndBase returns the parent directory and base filename from a path.
// "/foo/bar/file.go" returns "bar/file.go".
func getParentAndBase(path string) string {
	path = filepath.Clean(path)

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	parent := filepath.Base(dir)

	if parent == "." || parent == "/" || parent == filepath.VolumeName(parent) {
		return base
	}

	return filepath.Join(parent, base)
}
