// Package builder provides deterministic fixture graphs for traversal tests,
// benchmarks and the lvtraverse CLI.
//
// Every constructor produces a *core.Graph[string, core.Record[string]] whose
// records carry their own id as State, so a traversal's output is the visit
// order itself.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(opts, cons...) creates the graph, resolves the config and runs
//     constructors in order.
//   - Topologies (Constructor factories):
//     – Path(n), Cycle(n), Star(n), Grid(rows, cols), BinaryTree(depth),
//     Complete(n), RandomSparse(n, p), Disjoint(parts...).
//   - Options (BuilderOption):
//     – WithIDScheme, WithPrefix, WithExcelColumnIDs: vertex naming.
//     – WithSeed, WithRand: RNG for RandomSparse.
//     – WithBidirectional: also emit the reverse arc of every edge.
//     – WithDangling(k): append k edges to ids absent from the graph.
//
// Edge order:
//
//	Edges are appended to each record in a documented, stable order, because
//	that order is the traversal order for stack and queue schedulers.
//
// Errors:
//
//   - ErrTooFewVertices      size parameter below the constructor's minimum.
//   - ErrInvalidProbability  p outside [0,1].
//   - ErrNeedRandSource      RandomSparse without WithSeed/WithRand.
//   - core.ErrDuplicateVertex two constructors produced the same id.
package builder
