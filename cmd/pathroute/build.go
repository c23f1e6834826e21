package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhamlin/pathroute/param"
	"github.com/zhamlin/pathroute/pattern"
)

var ErrInvalidParamArg = errors.New("invalid param, want key=value")

func buildCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "build <pattern> [key=value]...",
		Short: "Build a path from a pattern and params",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routes, err := opts.compile(args[:1])
			if err != nil {
				return err
			}
			route := routes[0]

			params, err := decodeParams(opts.registry, route.Tokens(), args[1:])
			if err != nil {
				return err
			}

			path, err := route.Build(params)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// decodeParams reads key=value args with the codec of the param's type, so
// values reach Build with the type the pattern declares.
func decodeParams(registry param.Registry, tokens []pattern.Token, args []string) (param.Map, error) {
	types := map[string]string{}
	for tok := range pattern.Params(tokens) {
		types[tok.Name] = tok.Type
	}

	params := param.Map{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParamArg, arg)
		}

		typ, has := types[key]
		if !has {
			// unknown keys are ignored by Build
			params[key] = value
			continue
		}

		codec, _ := registry.Lookup(typ)
		v, next, ok := codec.Decode(value, 0)
		if !ok || next != len(value) {
			return nil, fmt.Errorf("%w: %q is not a valid %s", param.ErrInvalidParamType, value, typ)
		}
		params[key] = v
	}
	return params, nil
}
