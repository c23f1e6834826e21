package param_test

import (
	"net/netip"
	"testing"

	"github.com/zhamlin/pathroute/internal/test"
	"github.com/zhamlin/pathroute/param"
)

type decodeCase struct {
	path  string
	index int
	want  any
	next  int
	ok    bool
}

func compareDecoded(t *testing.T, decode param.DecodeFunc, tests []decodeCase) {
	t.Helper()

	for _, tc := range tests {
		got, next, ok := decode(tc.path, tc.index)
		test.Equal(t, ok, tc.ok, "decode(%q, %d) ok", tc.path, tc.index)
		test.Equal(t, next, tc.next, "decode(%q, %d) next", tc.path, tc.index)

		if tc.ok {
			test.Equal(t, got, tc.want, "decode(%q, %d) value", tc.path, tc.index)
		}
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		path  string
		index int
		want  string
		next  int
	}{
		{path: "/foo/42", index: 5, want: "42", next: 7},
		{path: "/foo/42/bar", index: 5, want: "42", next: 7},
		{path: "/foo/", index: 5, want: "", next: 5},
		{path: "/foo//", index: 5, want: "", next: 5},
		{path: "/foo", index: 10, want: "", next: 4},
	}

	for _, tc := range tests {
		got, next := param.Segment(tc.path, tc.index)
		test.Equal(t, got, tc.want)
		test.Equal(t, next, tc.next)
	}
}

func TestDecodeString(t *testing.T) {
	compareDecoded(t, param.DecodeString, []decodeCase{
		{path: "/cats", index: 1, want: "cats", next: 5, ok: true},
		{path: "/cats/dogs", index: 1, want: "cats", next: 5, ok: true},
		{path: "/", index: 1, want: "", next: 1, ok: true},
	})
}

func TestDecodeNumber(t *testing.T) {
	compareDecoded(t, param.DecodeNumber, []decodeCase{
		{path: "/42", index: 1, want: 42, next: 3, ok: true},
		{path: "/-7/x", index: 1, want: -7, next: 3, ok: true},
		{path: "/", index: 1, next: 1, ok: false},
		{path: "/abc", index: 1, next: 1, ok: false},
		{path: "/42abc", index: 1, next: 1, ok: false},
		{path: "//42", index: 1, next: 1, ok: false},
	})
}

func TestDecodeBool(t *testing.T) {
	compareDecoded(t, param.DecodeBool, []decodeCase{
		{path: "/true", index: 1, want: true, next: 5, ok: true},
		{path: "/0", index: 1, want: false, next: 2, ok: true},
		{path: "/yes", index: 1, next: 1, ok: false},
	})
}

type label string

func (l label) String() string {
	return "label-" + string(l)
}

func TestEncodeString(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{value: "cats", want: "cats"},
		{value: label("x"), want: "label-x"},
		{value: 35, want: "35"},
	}

	for _, tc := range tests {
		got, err := param.EncodeString(tc.value)
		test.NoError(t, err)
		test.Equal(t, got, tc.want)
	}
}

type productID int

func TestEncodeNumber(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{value: 42, want: "42"},
		{value: int64(-3), want: "-3"},
		{value: uint8(7), want: "7"},
		{value: productID(11), want: "11"},
	}

	for _, tc := range tests {
		got, err := param.EncodeNumber(tc.value)
		test.NoError(t, err)
		test.Equal(t, got, tc.want)
	}

	_, err := param.EncodeNumber("42")
	test.IsError(t, err, param.ErrInvalidParamType)
}

func TestEncodeBool(t *testing.T) {
	got, err := param.EncodeBool(true)
	test.NoError(t, err)
	test.Equal(t, got, "true")

	_, err = param.EncodeBool(1)
	test.IsError(t, err, param.ErrInvalidParamType)
}

func TestDerive(t *testing.T) {
	codec := param.Derive(param.Number(), func(v any) (productID, bool) {
		n := v.(int)
		return productID(n), n > 0
	})

	got, next, ok := codec.Decode("/foo/42", 5)
	test.True(t, ok)
	test.Equal(t, next, 7)
	test.Equal[any](t, got, productID(42))

	_, next, ok = codec.Decode("/foo/0", 5)
	test.Equal(t, ok, false)
	test.Equal(t, next, 5)

	_, _, ok = codec.Decode("/foo/x", 5)
	test.Equal(t, ok, false)

	s, err := codec.Encode(productID(42))
	test.NoError(t, err)
	test.Equal(t, s, "42")
}

func TestTextCodec(t *testing.T) {
	codec := param.TextCodec[netip.Addr]()

	got, next, ok := codec.Decode("/hosts/10.0.0.1/ping", 7)
	test.True(t, ok)
	test.Equal(t, next, 15)
	test.Equal[any](t, got, netip.MustParseAddr("10.0.0.1"))

	_, _, ok = codec.Decode("/hosts/nope", 7)
	test.Equal(t, ok, false)

	s, err := codec.Encode(netip.MustParseAddr("10.0.0.1"))
	test.NoError(t, err)
	test.Equal(t, s, "10.0.0.1")

	_, err = codec.Encode(42)
	test.IsError(t, err, param.ErrInvalidParamType)
}

func TestCodecs_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		codec param.Codec
		value any
	}{
		{name: "string", codec: param.String(), value: "cats"},
		{name: "number", codec: param.Number(), value: 42},
		{name: "negative number", codec: param.Number(), value: -42},
		{name: "bool", codec: param.Bool(), value: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.codec.Encode(tc.value)
			test.NoError(t, err)

			path := "/" + s
			got, next, ok := tc.codec.Decode(path, 1)
			test.True(t, ok)
			test.Equal(t, next, len(path))
			test.Equal(t, got, tc.value)
		})
	}
}
