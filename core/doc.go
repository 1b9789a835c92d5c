// Package core provides the in-memory graph mapping that the traversal engine
// reads: an insertion-ordered, concurrency-safe map from identifier to vertex
// record, plus a ready-made Record vertex and RecordOperator.
//
// The engine only borrows a Graph; it never mutates it. Build the graph first,
// then traverse it:
//
//	g, err := core.FromRecords(
//	    core.Record[string]{ID: "A", State: "alpha", Edges: []string{"B", "C"}},
//	    core.Record[string]{ID: "B", State: "beta"},
//	    core.Record[string]{ID: "C", State: "gamma"},
//	)
//
// Determinism
//
//	Keys() preserves first-insertion order; that order drives the coverage
//	phase of a traversal, so the output of a walk is fully reproducible.
//
// Edges pointing at ids that are not keys are legal. Dangling reports them.
//
// Errors:
//
//	ErrDuplicateVertex - Add was called with an id already present.
//	ErrEmptyVertexID   - a Record with an empty ID was added via AddRecord.
package core
