package main

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/zhamlin/pathroute/openapi3"
)

func openapiCmd(opts *options) *cobra.Command {
	var (
		title   string
		methods []string
	)

	cmd := &cobra.Command{
		Use:   "openapi <pattern>...",
		Short: "Print an OpenAPI document describing the patterns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routes, err := opts.compile(args)
			if err != nil {
				return err
			}

			spec := openapi3.New()
			spec.Info = openapi3.NewExtendable(&openapi3.Info{Title: title, Version: version})

			for _, r := range routes {
				if err := spec.AddDeclaration(r, methods...); err != nil {
					return err
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(spec)
		},
	}

	cmd.Flags().StringVar(&title, "title", "pathroute", "document title")
	cmd.Flags().StringSliceVar(&methods, "method", []string{http.MethodGet}, "operation methods of every path")

	return cmd
}
