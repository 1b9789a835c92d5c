// File: methods.go
// Role: Graph construction and read-only queries.
//
// Determinism:
//   - Keys() and Range() enumerate ids in first-insertion order.
//   - FromSortedMap orders ids ascending.
//
// Concurrency:
//   - All state guarded by mu (RWMutex); Keys returns a copy.
package core

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Add inserts v under id at the end of the key order.
//
// Returns:
//   - error: ErrDuplicateVertex if id is already present (the graph is unchanged).
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph[ID, V]) Add(id ID, v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[id]; exists {
		return ErrDuplicateVertex
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.verts = append(g.verts, v)

	return nil
}

// Set inserts or replaces the record under id. A replaced id keeps its
// original position in the key order, as with an object literal key.
func (g *Graph[ID, V]) Set(id ID, v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i, exists := g.index[id]; exists {
		g.verts[i] = v
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.verts = append(g.verts, v)
}

// Vertex returns the record stored under id.
func (g *Graph[ID, V]) Vertex(id ID) (V, bool) {
	var zero V
	if g == nil {
		return zero, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return zero, false
	}

	return g.verts[i], true
}

// Has reports whether id is present.
func (g *Graph[ID, V]) Has(id ID) bool {
	_, ok := g.Vertex(id)
	return ok
}

// Keys returns a copy of all ids in insertion order.
func (g *Graph[ID, V]) Keys() []ID {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.order)
}

// Len returns the number of vertices.
func (g *Graph[ID, V]) Len() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Range yields (id, vertex) pairs in insertion order over a snapshot taken
// when iteration starts.
func (g *Graph[ID, V]) Range() iter.Seq2[ID, V] {
	return func(yield func(ID, V) bool) {
		if g == nil {
			return
		}
		g.mu.RLock()
		ids := slices.Clone(g.order)
		vs := slices.Clone(g.verts)
		g.mu.RUnlock()

		for i, id := range ids {
			if !yield(id, vs[i]) {
				return
			}
		}
	}
}

// FromSortedMap builds a Graph from a plain map, ordering ids ascending.
// Go maps carry no insertion order, so sorting is the stable substitute.
func FromSortedMap[ID cmp.Ordered, V any](m map[ID]V) *Graph[ID, V] {
	g := New[ID, V](len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		g.index[id] = len(g.order)
		g.order = append(g.order, id)
		g.verts = append(g.verts, m[id])
	}

	return g
}

// FromRecords builds a string-keyed Graph from records in the given order.
//
// Returns:
//   - ErrEmptyVertexID if a record has an empty ID.
//   - ErrDuplicateVertex if two records share an ID.
func FromRecords[S any](records ...Record[S]) (*Graph[string, Record[S]], error) {
	g := New[string, Record[S]](len(records))
	for _, r := range records {
		if err := AddRecord(g, r); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddRecord adds r to g keyed by r.ID.
func AddRecord[S any](g *Graph[string, Record[S]], r Record[S]) error {
	if r.ID == "" {
		return ErrEmptyVertexID
	}

	return g.Add(r.ID, r)
}

// Dangling lists every edge whose target is absent from g, in key order and
// then declared edge order. Such edges are valid data; the traversal engine
// skips them.
func Dangling[ID comparable, V any](g *Graph[ID, V], op interface{ Edges(V) []ID }) []Edge[ID] {
	var out []Edge[ID]
	for id, v := range g.Range() {
		for _, to := range op.Edges(v) {
			if !g.Has(to) {
				out = append(out, Edge[ID]{From: id, To: to})
			}
		}
	}

	return out
}
