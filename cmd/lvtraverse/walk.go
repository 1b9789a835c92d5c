package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtraverse/core"
	"github.com/katalvlaran/lvtraverse/internal/logging"
	"github.com/katalvlaran/lvtraverse/loader"
	"github.com/katalvlaran/lvtraverse/scheduler"
	"github.com/katalvlaran/lvtraverse/traverse"
)

// ErrUnknownOrder is returned for an --order value with no scheduler.
var ErrUnknownOrder = errors.New("unknown order")

// orders maps --order values to scheduler factories.
var orders = map[string]func() traverse.Scheduler[string]{
	"dfs":   func() traverse.Scheduler[string] { return scheduler.NewStack[string]() },
	"bfs":   func() traverse.Scheduler[string] { return scheduler.NewQueue[string]() },
	"dedup": func() traverse.Scheduler[string] { return scheduler.NewDedupQueue[string]() },
	"priority": func() traverse.Scheduler[string] {
		return scheduler.NewPriority(func(a, b string) bool { return a < b })
	},
}

func orderNames() string {
	return "dfs, bfs, dedup or priority"
}

func newWalkCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print every vertex state of a graph document in traversal order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWalk(cmd, file)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "graph document (.yaml, .yml, .json, .toml, .hcl)")
	f.String("start", "", "start vertex id; empty starts at the first key")
	f.String("order", "dfs", "traversal order: "+orderNames())
	f.Int("limit", 0, "stop after N states (0 = no limit)")
	f.String("output", "text", "output format: text or json (one value per line)")
	_ = cmd.MarkFlagRequired("file")
	a.bind(f.Lookup("start"), f.Lookup("order"), f.Lookup("limit"), f.Lookup("output"))

	return cmd
}

func (a *app) runWalk(cmd *cobra.Command, file string) error {
	log := logging.New("walk")

	order := strings.ToLower(a.v.GetString("order"))
	newSched, ok := orders[order]
	if !ok {
		return fmt.Errorf("--order %q: %w (want %s)", order, ErrUnknownOrder, orderNames())
	}
	emit, err := emitter(cmd.OutOrStdout(), a.v.GetString("output"))
	if err != nil {
		return err
	}

	g, err := loader.Load(file)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []traverse.Option[string]{
		traverse.WithContext[string](ctx),
		traverse.WithLogger[string](log),
	}
	if start := a.v.GetString("start"); start != "" {
		opts = append(opts, traverse.WithStart(start))
	}

	w, err := traverse.New[string, loader.Vertex, any](g, core.RecordOperator[any]{}, newSched(), opts...)
	if err != nil {
		return err
	}

	limit := a.v.GetInt("limit")
	n := 0
	for state := range w.All() {
		if err := emit(state); err != nil {
			return err
		}
		if n++; limit > 0 && n >= limit {
			break
		}
	}
	if err := w.Err(); err != nil {
		return err
	}

	st := w.Stats()
	log.Info("walk finished",
		slog.String("file", file),
		slog.String("order", order),
		slog.Int("visited", st.Visited),
		slog.Int("runs", st.Runs),
		slog.Int("dropped", st.Dropped),
		slog.Int("duplicates", st.Duplicates),
	)

	return nil
}

// emitter returns a per-state printer for the chosen output format.
func emitter(out io.Writer, format string) (func(any) error, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return func(v any) error {
			_, err := fmt.Fprintln(out, v)
			return err
		}, nil
	case "json":
		enc := json.NewEncoder(out)
		return func(v any) error { return enc.Encode(v) }, nil
	}

	return nil, fmt.Errorf("--output %q: want text or json", format)
}
