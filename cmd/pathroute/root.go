package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhamlin/pathroute"
	"github.com/zhamlin/pathroute/param"
)

var ErrInvalidTypeFlag = errors.New("invalid --type, want Alias=builtin")

type options struct {
	types    []string
	validate bool
	logLevel string

	registry param.Registry
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pathroute",
		Short: "Inspect, match and build route patterns",
		Long: `pathroute compiles route patterns such as /users/{userId:number} or
/users/:name and uses them to match paths, build paths from params
and describe routes as an OpenAPI document.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringArrayVar(&opts.types, "type", nil, "register a type alias, e.g. --type id=number")
	flags.BoolVar(&opts.validate, "validate", false, "validate decoded params against their schemas")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	cmd.AddCommand(
		tokensCmd(),
		matchCmd(opts),
		buildCmd(opts),
		openapiCmd(opts),
	)

	return cmd
}

func (o *options) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	registry, err := registryWithAliases(param.Default(), o.types)
	if err != nil {
		return err
	}
	o.registry = registry

	o.logger.Debug("registry ready", "types", registry.Tags())
	return nil
}

func registryWithAliases(base param.Registry, aliases []string) (param.Registry, error) {
	registry := base
	for _, alias := range aliases {
		name, builtin, ok := strings.Cut(alias, "=")
		if !ok || name == "" {
			return registry, fmt.Errorf("%w: %q", ErrInvalidTypeFlag, alias)
		}

		codec, has := base.Lookup(builtin)
		if !has {
			return registry, fmt.Errorf("%w: %q: unknown builtin %q", ErrInvalidTypeFlag, alias, builtin)
		}
		registry = registry.With(name, codec)
	}
	return registry, nil
}

func (o *options) routeOptions() []pathroute.Option {
	opts := []pathroute.Option{pathroute.WithRegistry(o.registry)}
	if o.validate {
		opts = append(opts, pathroute.WithValidation())
	}
	return opts
}

func (o *options) compile(patterns []string) ([]*pathroute.Route, error) {
	routes := make([]*pathroute.Route, 0, len(patterns))
	for _, p := range patterns {
		route, err := pathroute.Compile(p, o.routeOptions()...)
		if err != nil {
			return nil, err
		}
		o.logger.Debug("compiled route", "pattern", p, "params", route.ParamNames())
		routes = append(routes, route)
	}
	return routes, nil
}
