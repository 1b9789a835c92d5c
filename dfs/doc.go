// Package dfs provides depth-first traversal on top of package traverse.
//
// What
//
//   - Binds traverse.Walker to scheduler.Stack. The stack receives each vertex's
//     eligible edges in one batch and pushes them reversed, so the first
//     declared edge is explored first.
//   - Pre-order emission: a vertex's state is produced before any descendant.
//   - Full coverage after the start component, in graph key order.
//   - Reachable limits the walk to the start component and reports ids.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) worst case; the stack tolerates duplicate ids and the
//     engine discards them on extraction.
//
// Example
//
//	A → [B, C], B → [D]     Order from A: A B D C
package dfs
