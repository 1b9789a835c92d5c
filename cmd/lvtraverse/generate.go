package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtraverse/builder"
	"github.com/katalvlaran/lvtraverse/loader"
)

// ErrUnknownShape is returned for a --shape value with no builder.
var ErrUnknownShape = errors.New("unknown shape")

var shapes = []string{"path", "cycle", "star", "grid", "tree", "complete", "random"}

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit a deterministic fixture graph document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			con, err := a.constructor()
			if err != nil {
				return err
			}
			format, err := loader.ParseFormat(a.v.GetString("format"))
			if err != nil {
				return err
			}

			var opts []builder.BuilderOption
			if prefix := a.v.GetString("prefix"); prefix != "" {
				opts = append(opts, builder.WithPrefix(prefix))
			}
			if a.v.GetBool("bidirectional") {
				opts = append(opts, builder.WithBidirectional())
			}
			if k := a.v.GetInt("dangling"); k > 0 {
				opts = append(opts, builder.WithDangling(k))
			}
			opts = append(opts, builder.WithSeed(a.v.GetInt64("seed")))

			g, err := builder.Build(con, opts...)
			if err != nil {
				return err
			}
			return loader.Encode(cmd.OutOrStdout(), g, format)
		},
	}

	f := cmd.Flags()
	f.String("shape", "path", "topology: "+strings.Join(shapes, ", "))
	f.Int("n", 5, "size: vertices, grid rows, or tree depth")
	f.Int("cols", 0, "grid columns (0 = same as --n)")
	f.Float64("p", 0.2, "edge probability for --shape random")
	f.Int64("seed", 1, "RNG seed for --shape random")
	f.String("prefix", "", "vertex id prefix, e.g. v → v0, v1, ...")
	f.Bool("bidirectional", false, "also emit the reverse of every edge")
	f.Int("dangling", 0, "append N edges to absent vertices")
	f.String("format", "yaml", "output format: yaml, json, toml or hcl")
	for _, name := range []string{"shape", "n", "cols", "p", "seed", "prefix", "bidirectional", "dangling", "format"} {
		a.bind(f.Lookup(name))
	}

	return cmd
}

// constructor maps the shape flags to a builder.Constructor.
func (a *app) constructor() (builder.Constructor, error) {
	n := a.v.GetInt("n")
	switch shape := strings.ToLower(a.v.GetString("shape")); shape {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "grid":
		cols := a.v.GetInt("cols")
		if cols <= 0 {
			cols = n
		}
		return builder.Grid(n, cols), nil
	case "tree":
		return builder.BinaryTree(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "random":
		return builder.RandomSparse(n, a.v.GetFloat64("p")), nil
	default:
		return nil, fmt.Errorf("--shape %q: %w (want %s)", shape, ErrUnknownShape, strings.Join(shapes, ", "))
	}
}
