// File: bfs.go
// Role: traversal engine bound to a FIFO frontier; states come out in
// breadth-first (level) order from the start vertex, then every remaining
// component in graph key order.

package bfs

import (
	"github.com/katalvlaran/lvtraverse/scheduler"
	"github.com/katalvlaran/lvtraverse/traverse"
)

// New returns a breadth-first Walker over g.
// Errors are those of traverse.New.
func New[ID comparable, V, S any](g traverse.Graph[ID, V], op traverse.Operator[V, S, ID], opts ...traverse.Option[ID]) (*traverse.Walker[ID, V, S], error) {
	return traverse.New(g, op, scheduler.NewQueue[ID](), opts...)
}

// Order collects every state of a breadth-first walk.
func Order[ID comparable, V, S any](g traverse.Graph[ID, V], op traverse.Operator[V, S, ID], opts ...traverse.Option[ID]) ([]S, error) {
	return traverse.Collect(g, op, scheduler.NewQueue[ID](), opts...)
}
