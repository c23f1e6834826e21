package param_test

import (
	"strings"
	"testing"

	"github.com/zhamlin/pathroute/internal/color"
	"github.com/zhamlin/pathroute/internal/test"
	"github.com/zhamlin/pathroute/param"
)

type categoryParams struct {
	UserID   int `name:"userId"`
	Category string
	internal string
}

func TestBind(t *testing.T) {
	got, err := param.Bind[categoryParams](param.Map{
		"userId":   42,
		"category": "cats",
	}, param.NamerLowerFirst)
	test.NoError(t, err)

	test.Equal(t, got, categoryParams{UserID: 42, Category: "cats"})
}

func TestBind_ConvertsWithinKind(t *testing.T) {
	type Params struct {
		ID    productID `name:"id"`
		Count int64
	}

	got, err := param.Bind[Params](param.Map{"id": 7, "count": 3}, param.NamerLowerFirst)
	test.NoError(t, err)
	test.Equal(t, got, Params{ID: 7, Count: 3})
}

func TestBind_MissingValue(t *testing.T) {
	_, err := param.Bind[categoryParams](param.Map{"userId": 42}, param.NamerLowerFirst)
	test.IsError(t, err, param.ErrMissingValue)

	var fieldErr param.InvalidFieldError
	test.WantError(t, err, &fieldErr)
	test.Equal(t, fieldErr.Param, "category")
}

func TestInvalidFieldError_ErrorWithColor(t *testing.T) {
	_, err := param.Bind[categoryParams](param.Map{"userId": 42}, param.NamerLowerFirst)

	var fieldErr param.InvalidFieldError
	test.WantError(t, err, &fieldErr)

	want := strings.Join([]string{
		"type categoryParams struct {",
		"    UserID   int    `name:\"userId\"`",
		"    Category string",
		"    ^^^^^^^^",
		"    param \"category\": no value for param",
		"    internal string",
		"}",
	}, "\n")
	test.Equal(t, fieldErr.ErrorWithColor(color.NoColors), want)
}

func TestBind_RefusesNumberToString(t *testing.T) {
	type Params struct {
		Name string
	}

	_, err := param.Bind[Params](param.Map{"name": 65}, param.NamerLowerFirst)
	test.IsError(t, err, param.ErrNotAssignable)
}

func TestBind_OutOfRange(t *testing.T) {
	type small struct {
		ID int8 `name:"id"`
	}
	type unsigned struct {
		ID uint `name:"id"`
	}
	type whole struct {
		ID int `name:"id"`
	}

	tests := []struct {
		name string
		bind func() error
	}{
		{name: "int overflows int8", bind: func() error {
			_, err := param.Bind[small](param.Map{"id": 300}, param.NamerLowerFirst)
			return err
		}},
		{name: "int underflows int8", bind: func() error {
			_, err := param.Bind[small](param.Map{"id": -129}, param.NamerLowerFirst)
			return err
		}},
		{name: "negative to uint", bind: func() error {
			_, err := param.Bind[unsigned](param.Map{"id": -1}, param.NamerLowerFirst)
			return err
		}},
		{name: "float to int", bind: func() error {
			_, err := param.Bind[whole](param.Map{"id": 1.5}, param.NamerLowerFirst)
			return err
		}},
		{name: "uint64 overflows int", bind: func() error {
			_, err := param.Bind[whole](param.Map{"id": uint64(1 << 63)}, param.NamerLowerFirst)
			return err
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.bind()
			test.IsError(t, err, param.ErrNotAssignable)

			var fieldErr param.InvalidFieldError
			test.WantError(t, err, &fieldErr)
			test.Equal(t, fieldErr.Param, "id")
		})
	}
}

func TestBind_InRangeNumbers(t *testing.T) {
	type Params struct {
		Small int8    `name:"small"`
		Count uint16  `name:"count"`
		Ratio float64 `name:"ratio"`
	}

	got, err := param.Bind[Params](param.Map{"small": -128, "count": 65535, "ratio": 3}, param.NamerLowerFirst)
	test.NoError(t, err)
	test.Equal(t, got, Params{Small: -128, Count: 65535, Ratio: 3})
}

func TestBind_NonStruct(t *testing.T) {
	_, err := param.Bind[int](param.Map{}, param.NamerLowerFirst)
	test.IsError(t, err, param.ErrNonStructArg)
}

func TestFromStruct(t *testing.T) {
	value := categoryParams{UserID: 42, Category: "cats", internal: "x"}

	got, err := param.FromStruct(&value, param.NamerLowerFirst)
	test.NoError(t, err)
	test.MatchAsJSON(t, got, param.Map{"userId": 42, "category": "cats"})
}

func TestFromStruct_Nil(t *testing.T) {
	var value *categoryParams
	_, err := param.FromStruct(value, param.NamerLowerFirst)
	test.IsError(t, err, param.ErrNonStructArg)

	_, err = param.FromStruct(nil, param.NamerLowerFirst)
	test.IsError(t, err, param.ErrNonStructArg)
}
