// Package bfs provides breadth-first traversal on top of package traverse.
//
// What
//
//   - Binds traverse.Walker to scheduler.Queue; edges are scheduled in their
//     declared order and extracted in the same order.
//   - Full coverage: after the start component is drained, every unvisited key
//     of the graph starts a new run, in key order.
//   - All traverse options apply (WithStart, WithContext, hooks, WithMaxVisits).
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) worst case for the queue, which tolerates duplicates.
//
// Usage
//
//	states, err := bfs.Order[string, core.Record[string], string](
//	    g, core.RecordOperator[string]{}, traverse.WithStart("A"))
package bfs
