package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvtraverse/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		opts:            opts,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with LandThreshold 1 and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Index maps (x,y) to its vertex id, y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a vertex id back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

func (gg *GridGraph) isLand(x, y int) bool {
	return gg.CellValues[y][x] >= gg.opts.LandThreshold
}

// Vertex returns the land cell with the given id. Water and out-of-range ids
// are absent, so edges never lead into them.
func (gg *GridGraph) Vertex(id int) (Cell, bool) {
	if id < 0 || id >= gg.Width*gg.Height {
		return Cell{}, false
	}
	x, y := gg.Coordinate(id)
	if !gg.isLand(x, y) {
		return Cell{}, false
	}

	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}, true
}

// Keys returns the ids of all land cells in row-major order.
func (gg *GridGraph) Keys() []int {
	var keys []int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.isLand(x, y) {
				keys = append(keys, gg.Index(x, y))
			}
		}
	}

	return keys
}

// ID returns the vertex id of c.
func (gg *GridGraph) ID(c Cell) int { return gg.Index(c.X, c.Y) }

// State returns c itself.
func (gg *GridGraph) State(c Cell) Cell { return c }

// Edges returns the ids of c's land neighbors in offset order (clockwise from
// north), keeping only equal values when SplitByValue is set.
func (gg *GridGraph) Edges(c Cell) []int {
	out := make([]int, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !gg.InBounds(nx, ny) || !gg.isLand(nx, ny) {
			continue
		}
		if gg.opts.SplitByValue && gg.CellValues[ny][nx] != c.Value {
			continue
		}
		out = append(out, gg.Index(nx, ny))
	}

	return out
}

// vertexID formats the exported identifier for cell (x,y).
func vertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToGraph materializes the land cells as records with id "x,y", the cell
// value as state and edges in Edges order.
func (gg *GridGraph) ToGraph() *core.Graph[string, core.Record[int]] {
	keys := gg.Keys()
	g := core.New[string, core.Record[int]](len(keys))
	for _, id := range keys {
		c, _ := gg.Vertex(id)
		r := core.Record[int]{ID: vertexID(c.X, c.Y), State: c.Value}
		for _, n := range gg.Edges(c) {
			nx, ny := gg.Coordinate(n)
			r.Edges = append(r.Edges, vertexID(nx, ny))
		}
		g.Set(r.ID, r)
	}

	return g
}
