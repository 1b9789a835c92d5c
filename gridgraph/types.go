package gridgraph

// Connectivity selects the neighbor pattern of a cell.
type Connectivity int

const (
	// Conn4 links north, east, south and west neighbors.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// Cell is one grid position and its value; it is the state a traversal yields.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Original grid value at (X, Y)
}

// GridOptions configures how cells become vertices and edges.
type GridOptions struct {
	// LandThreshold is the minimum value of a land cell; smaller values are water.
	LandThreshold int
	// Conn selects 4- or 8-neighborhood.
	Conn Connectivity
	// SplitByValue links only neighbors holding the same value.
	SplitByValue bool
}

// DefaultGridOptions returns LandThreshold 1, Conn4, no value split.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph is an immutable view of a grid as a graph over its land cells.
// Vertex ids are row-major indices y*Width + x.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	opts            GridOptions
	neighborOffsets [][2]int
}
