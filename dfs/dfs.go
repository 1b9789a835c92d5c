// File: dfs.go
// Role: traversal engine bound to a LIFO frontier. States come out in
// pre-order: a vertex before its descendants, siblings left to right in
// declared edge order.

package dfs

import (
	"github.com/katalvlaran/lvtraverse/scheduler"
	"github.com/katalvlaran/lvtraverse/traverse"
)

// New returns a depth-first Walker over g.
func New[ID comparable, V, S any](g traverse.Graph[ID, V], op traverse.Operator[V, S, ID], opts ...traverse.Option[ID]) (*traverse.Walker[ID, V, S], error) {
	return traverse.New(g, op, scheduler.NewStack[ID](), opts...)
}

// Order collects every state of a depth-first walk.
//
// Errors:
//   - traverse.ErrOperatorNil if op is nil.
//   - traverse.ErrOptionViolation for invalid options.
//   - ctx.Err() or a wrapped OnVisit error if the walk was stopped.
func Order[ID comparable, V, S any](g traverse.Graph[ID, V], op traverse.Operator[V, S, ID], opts ...traverse.Option[ID]) ([]S, error) {
	return traverse.Collect(g, op, scheduler.NewStack[ID](), opts...)
}

// Reachable returns the ids reachable from start in pre-order, without
// covering the rest of the graph. An absent start yields nil.
func Reachable[ID comparable, V, S any](g traverse.Graph[ID, V], op traverse.Operator[V, S, ID], start ID) ([]ID, error) {
	var (
		out     []ID
		inStart bool
	)
	w, err := New(g, op,
		traverse.WithStart(start),
		traverse.WithOnRunStart(func(run int, root ID) { inStart = run == 1 && root == start }),
		traverse.WithOnVisit(func(id ID) error {
			if inStart {
				out = append(out, id)
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	for range w.All() {
		if !inStart {
			break
		}
	}

	return out, w.Err()
}
