package test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/nsf/jsondiff"
)

func argsToFormat(args ...any) (string, []any) {
	if len(args) > 0 {
		if msg, ok := args[0].(string); ok {
			return msg, args[1:]
		}
	}
	return "", nil
}

type logFn func(format string, args ...any)

func log(tb testing.TB, fn logFn, format string, args ...any) func(args ...any) {
	tb.Helper()

	msg, args := argsToFormat(args...)
	if msg == "" {
		return func(in ...any) {
			tb.Helper()
			fn(format, in...)
		}
	}

	return func(in ...any) {
		tb.Helper()
		fn(msg+"\n"+format, append(args, in...)...)
	}
}

func Equal[T comparable](tb testing.TB, got, want T, args ...any) {
	tb.Helper()

	if got != want {
		log(tb, tb.Errorf, "got: %v, wanted: %v", args...)(got, want)
	}
}

// True fails the test right away when ok is false.
func True(tb testing.TB, ok bool, args ...any) {
	tb.Helper()

	if !ok {
		log(tb, tb.Fatalf, "expected true, got false", args...)()
	}
}

func NoError(tb testing.TB, err error, args ...any) {
	tb.Helper()

	if err != nil {
		log(tb, tb.Fatalf, "expected no error, got: %v", args...)(err)
	}
}

func WantError(tb testing.TB, err error, want any) {
	tb.Helper()

	if !errors.As(err, want) {
		tb.Fatalf("got: %T, wanted: %T error, ", err, want)
	}
}

func IsError(tb testing.TB, err, want error) {
	tb.Helper()

	if !errors.Is(err, want) {
		tb.Fatalf("got: %v, wanted: %q error", err, want)
	}
}

// Panics runs fn and returns the recovered value, failing the test
// if fn returned normally.
func Panics(tb testing.TB, fn func()) (recovered any) {
	tb.Helper()

	defer func() {
		recovered = recover()
		if recovered == nil {
			tb.Fatalf("expected a panic, got none")
		}
	}()

	fn()
	return nil
}

func mustMarshal(tb testing.TB, obj any) string {
	tb.Helper()

	switch val := obj.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	}

	val, err := json.MarshalIndent(&obj, "", " ")
	NoError(tb, err, "json.MarshalIndent")
	return string(val)
}

func jsonDiff(input, expected string) string {
	opts := jsondiff.DefaultConsoleOptions()
	diff, show := jsondiff.Compare([]byte(input), []byte(expected), &opts)

	if diff.String() != "FullMatch" {
		return fmt.Sprintf("%v:\n%v", diff, show)
	}
	return ""
}

// MatchAsJSON compares got and want by their JSON encoding. Strings and
// byte slices are treated as already encoded JSON.
func MatchAsJSON(tb testing.TB, got, want any, args ...any) {
	tb.Helper()

	gotStr := mustMarshal(tb, got)
	wantStr := mustMarshal(tb, want)

	if diff := jsonDiff(gotStr, wantStr); diff != "" {
		log(tb, tb.Errorf, "%T does not match %T\n%s", args...)(got, want, diff)
	}
}
