package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtraverse/core"
	"github.com/katalvlaran/lvtraverse/loader"
)

// ErrDangling is returned by validate --strict when an edge targets an absent id.
var ErrDangling = errors.New("dangling edges present")

func newValidateCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load a graph document and report its keys and dangling edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loader.Load(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices: %d\n", g.Len())
			fmt.Fprintf(out, "keys:     %s\n", strings.Join(g.Keys(), ", "))

			dangling := core.Dangling(g, core.RecordOperator[any]{})
			if len(dangling) == 0 {
				fmt.Fprintln(out, "dangling: none")
				return nil
			}
			fmt.Fprintf(out, "dangling: %d\n", len(dangling))
			for _, e := range dangling {
				fmt.Fprintf(out, "  %s -> %s\n", e.From, e.To)
			}
			if a.v.GetBool("strict") {
				return fmt.Errorf("%s: %d %w", file, len(dangling), ErrDangling)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "graph document (.yaml, .yml, .json, .toml, .hcl)")
	f.Bool("strict", false, "fail when any edge targets an absent vertex")
	_ = cmd.MarkFlagRequired("file")
	a.bind(f.Lookup("strict"))

	return cmd
}
