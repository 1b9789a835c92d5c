// Package loader reads graph documents into an ordered core.Graph.
//
// A document is an ordered list of vertices, each with an id, an arbitrary
// state value and the ordered ids of its outgoing edges. Document order
// becomes the graph's key order, and so the coverage order of a traversal.
//
// Formats, chosen by file extension:
//
//	.yaml .yml   sequence of {id, state, edges}, or a mapping id: {state, edges}
//	.json        array of {"id", "state", "edges"}
//	.toml        [[vertex]] tables with id, state, edges
//	.hcl         vertex "A" { state = ..., edges = [...] } blocks
//
// Edges to ids absent from the document are kept; the traversal engine skips
// them and core.Dangling reports them.
//
// Errors:
//
//	ErrUnsupportedFormat - unknown extension or format name.
//	ErrMalformed         - the document does not have the vertex-list shape.
//	ErrEmptyID           - a vertex has an empty id.
//	ErrDuplicateID       - two vertices share an id.
package loader
