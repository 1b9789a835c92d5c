// Package lvtraverse is an order-agnostic graph traversal toolkit: one lazy
// engine, many visiting orders.
//
// What is lvtraverse?
//
//	A small, generic library in which the visiting order is a plug-in:
//		• traverse/  - the engine: visited set, drain runs, full coverage, lazy states
//		• scheduler/ - frontiers: Stack (depth-first), Queue (breadth-first),
//		               DedupQueue, Priority, Func adapter
//		• core/      - insertion-ordered Graph mapping, Record vertices, Dangling report
//		• bfs/, dfs/ - presets binding the engine to a Queue or a Stack
//		• builder/   - deterministic fixture graphs (path, cycle, grid, tree, ...)
//		• loader/    - graph documents in YAML, JSON, TOML and HCL
//		• gridgraph/ - 2D grids as implicit graphs; islands and flood fill
//		• cmd/lvtraverse - walk, validate and generate from the command line
//
// Why?
//
//   - Swap the Scheduler and nothing else changes: the engine never knows
//     whether it is walking depth-first, breadth-first or by priority.
//   - States are produced one at a time; stop whenever you like.
//   - Partial data is fine: edges to absent vertices are skipped.
//
// Quick ASCII example:
//
//	A → [B, C]
//	B → [D]
//
//	stack: A B D C
//	queue: A B C D
//
// Usage:
//
//	g, _ := core.FromRecords(
//	    core.Record[string]{ID: "A", State: "A", Edges: []string{"B", "C"}},
//	    core.Record[string]{ID: "B", State: "B", Edges: []string{"D"}},
//	    core.Record[string]{ID: "C", State: "C"},
//	    core.Record[string]{ID: "D", State: "D"},
//	)
//	for s := range traverse.Traverse(g, core.RecordOperator[string]{},
//	    scheduler.NewStack[string](), traverse.WithStart("A")) {
//	    fmt.Println(s)
//	}
package lvtraverse
