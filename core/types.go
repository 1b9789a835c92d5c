// File: types.go
// Role: Graph storage, Record vertices and sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateVertex indicates an attempt to add an id that is already present.
	ErrDuplicateVertex = errors.New("core: duplicate vertex id")

	// ErrEmptyVertexID indicates a record with an empty identifier.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")
)

// Graph is an insertion-ordered mapping from identifier to vertex record.
//
// Keys enumerates ids in the order they were first added; that order is the
// coverage order of a traversal. The zero value is not usable; call New.
// All methods are safe for concurrent use, and a nil *Graph behaves as an
// empty graph for read methods.
type Graph[ID comparable, V any] struct {
	mu    sync.RWMutex
	order []ID
	index map[ID]int // id → position in order
	verts []V        // parallel to order
}

// New creates an empty Graph with capacity hint n (n <= 0 means no hint).
// Complexity: O(1) besides the preallocation.
func New[ID comparable, V any](n int) *Graph[ID, V] {
	if n < 0 {
		n = 0
	}

	return &Graph[ID, V]{
		order: make([]ID, 0, n),
		index: make(map[ID]int, n),
		verts: make([]V, 0, n),
	}
}

// Record is the standard vertex shape: identifier, emitted state and the
// ordered identifiers of outgoing edges.
type Record[S any] struct {
	ID    string   `yaml:"id" json:"id" toml:"id"`
	State S        `yaml:"state" json:"state" toml:"state"`
	Edges []string `yaml:"edges,omitempty" json:"edges,omitempty" toml:"edges,omitempty"`
}

// RecordOperator reads Record vertices. It satisfies traverse.Operator.
type RecordOperator[S any] struct{}

// ID returns r.ID.
func (RecordOperator[S]) ID(r Record[S]) string { return r.ID }

// State returns r.State.
func (RecordOperator[S]) State(r Record[S]) S { return r.State }

// Edges returns r.Edges.
func (RecordOperator[S]) Edges(r Record[S]) []string { return r.Edges }

// Edge is a (From, To) pair of vertex identifiers.
type Edge[ID comparable] struct {
	From ID
	To   ID
}
