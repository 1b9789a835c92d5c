// Package traverse provides an order-agnostic graph traversal engine that
// produces a lazy, resumable sequence of vertex states.
//
// What
//
//   - Walks a read-only Graph (identifier → vertex record) through three
//     pluggable pieces:
//   - Operator  - reads a vertex's identifier, state and outgoing edge ids
//   - Scheduler - frontier of pending ids; its Add/Pull policy IS the order
//   - Walker    - the engine: visited set, drain loop, coverage loop
//   - Visits every vertex reachable from an optional start id, then every
//     remaining vertex in graph key order, each exactly once.
//   - Produces states one at a time (Next, or range over All), suspending after
//     each state; abandoning the sequence needs no cleanup.
//
// Why
//
//   - Depth-first, breadth-first and priority-first walks share one engine: swap
//     the Scheduler (see package scheduler) and nothing else changes.
//   - Partial graph data is tolerated: edge targets absent from the graph are
//     skipped, an unknown start id is not an error, an empty graph yields nothing.
//
// Algorithm
//
//	NotStarted → Seeding → Draining ⟲ (one run per disconnected root) → Coverage → Done
//
//	seed:     if start exists, schedule it and drain
//	drain:    while frontier not empty:
//	            id := Pull; skip if visited
//	            mark visited; yield State(vertex)
//	            on resume: schedule unvisited, present Edges(vertex) in one step
//	coverage: for each graph key (≠ start, unvisited): schedule it and drain
//
// Duplicates in the frontier are allowed; the visited check at extraction
// discards them. Schedulers implementing BatchScheduler receive a vertex's
// eligible edges as one slice, which lets a stack push them reversed and keep
// left-to-right depth-first order.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E) plus scheduler cost per operation.
//   - Memory: O(V) for the visited set and key snapshot, plus the frontier.
//
// Usage
//
//	w, err := traverse.New(g, op, scheduler.NewStack[string](),
//	    traverse.WithStart("A"),
//	    traverse.WithContext[string](ctx),
//	)
//	if err != nil {
//	    // ErrOperatorNil, ErrSchedulerNil or ErrOptionViolation
//	}
//	for state := range w.All() {
//	    fmt.Println(state)
//	}
//	if err := w.Err(); err != nil {
//	    // context error or OnVisit hook error
//	}
//
// Bind fixes the operator and a scheduler factory once, for reuse over many
// graphs:
//
//	walk := traverse.Bind(op, func() traverse.Scheduler[string] {
//	    return scheduler.NewQueue[string]()
//	})
//	for state := range walk(g, traverse.WithStart("A")) { ... }
//
// Options whose argument does not mention the identifier type need an explicit
// type argument: WithContext[string](ctx), WithMaxVisits[string](10).
//
// Options
//
//   - WithStart(id)            optional start vertex.
//   - WithContext(ctx)         cancellation, checked once per produced state.
//   - WithOnSchedule(fn)       hook for every scheduled id.
//   - WithOnVisit(fn)          hook on visit; returning an error aborts.
//   - WithOnRunStart(fn)       hook when a drain run begins.
//   - WithMaxVisits(n)         stop after n states (n > 0).
//   - WithLogger(l)            slog debug records for phases and runs.
//
// Errors
//
//   - ErrOperatorNil, ErrSchedulerNil  from New.
//   - ErrOptionViolation              for invalid options (negative MaxVisits).
//   - context.Canceled / DeadlineExceeded and wrapped OnVisit errors via Err.
package traverse
