package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zhamlin/pathroute"
	"github.com/zhamlin/pathroute/param"
)

var ErrNoMatch = errors.New("no pattern matched")

type matchOutput struct {
	Key    string    `json:"key"`
	Params param.Map `json:"params"`
}

func matchCmd(opts *options) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "match <pattern>... --path <path>",
		Short: "Match a path against patterns, first match wins",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routes, err := opts.compile(args)
			if err != nil {
				return err
			}

			c := pathroute.NewCombination(routes[0])
			for _, r := range routes[1:] {
				c = c.Add(r)
			}

			m, ok := c.Match(path)
			if !ok {
				opts.logger.Info("no match", "path", path, "patterns", len(args))
				return fmt.Errorf("%w: %s", ErrNoMatch, path)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(matchOutput{Key: m.Key, Params: m.Params})
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "path to match")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
