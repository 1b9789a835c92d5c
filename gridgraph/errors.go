package gridgraph

import "errors"

// Sentinel errors returned by grid construction and queries.
var (
	ErrEmptyGrid      = errors.New("gridgraph: grid has no cells")
	ErrNonRectangular = errors.New("gridgraph: rows differ in length")
	ErrOutOfBounds    = errors.New("gridgraph: coordinate outside the grid")
)
