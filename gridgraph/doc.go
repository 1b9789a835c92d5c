// Package gridgraph treats a 2D grid of integer cells as an implicit graph
// that the traversal engine walks without materializing adjacency.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - It is both a traverse.Graph (land cells, keyed by row-major index) and
//     a traverse.Operator (state is the Cell, edges are land neighbors).
//   - ConnectedComponents splits the land into islands, one drain run each.
//   - Region floods one island from a cell.
//   - ToGraph materializes a core.Graph for export or other tooling.
//
// Why:
//
//   - Game maps: contiguous land detection.
//   - Image regions: flood fill by equal value (SplitByValue).
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbors).
//   - Region:              O(|island|×d).
//   - ToGraph:             O(W×H×d).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.SplitByValue: only equal-valued neighbors are adjacent.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: Region was given a coordinate outside the grid.
package gridgraph
