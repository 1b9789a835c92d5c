package traverse

import (
	"fmt"
	"iter"
	"log/slog"
)

// Walker is a single-pass, pull-based traversal over a Graph. It owns the
// visited set and drives the Scheduler; the graph and operator are borrowed.
// A Walker is not safe for concurrent use.
type Walker[ID comparable, V, S any] struct {
	graph Graph[ID, V]
	op    Operator[V, S, ID]
	sched Scheduler[ID]
	batch BatchScheduler[ID] // non-nil when sched accepts whole edge lists
	opts  Options[ID]

	phase   Phase
	visited map[ID]struct{}
	keys    []ID // coverage snapshot of graph keys
	cursor  int  // next coverage key index

	// pending holds the last yielded vertex; its edges are expanded when the
	// consumer asks for the next state.
	pending    V
	hasPending bool
	buf        []ID

	stats Stats
	err   error
}

// New builds a Walker for one traversal of g. A nil g is treated as an empty
// graph. Returns ErrOperatorNil, ErrSchedulerNil or ErrOptionViolation on
// invalid input.
func New[ID comparable, V, S any](g Graph[ID, V], op Operator[V, S, ID], s Scheduler[ID], opts ...Option[ID]) (*Walker[ID, V, S], error) {
	if op == nil {
		return nil, ErrOperatorNil
	}
	if s == nil {
		return nil, ErrSchedulerNil
	}

	o := DefaultOptions[ID]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &Walker[ID, V, S]{
		graph: g,
		op:    op,
		sched: s,
		opts:  o,
		phase: PhaseNotStarted,
	}
	if b, ok := s.(BatchScheduler[ID]); ok {
		w.batch = b
	}

	return w, nil
}

// Traverse returns the lazy sequence of states for g. Invalid input yields an
// empty sequence; use New when construction errors or Err matter.
func Traverse[ID comparable, V, S any](g Graph[ID, V], op Operator[V, S, ID], s Scheduler[ID], opts ...Option[ID]) iter.Seq[S] {
	w, err := New(g, op, s, opts...)
	if err != nil {
		return func(func(S) bool) {}
	}

	return w.All()
}

// Bind fixes an operator and a scheduler factory once and returns a reusable
// traversal function. Every call gets a fresh scheduler from newSched, so the
// returned function may be used for many graphs, one walk at a time or
// concurrently. A nil op or newSched yields empty sequences.
func Bind[ID comparable, V, S any](op Operator[V, S, ID], newSched func() Scheduler[ID]) func(g Graph[ID, V], opts ...Option[ID]) iter.Seq[S] {
	return func(g Graph[ID, V], opts ...Option[ID]) iter.Seq[S] {
		if newSched == nil {
			return func(func(S) bool) {}
		}

		return Traverse(g, op, newSched(), opts...)
	}
}

// Collect runs the whole traversal eagerly and returns every state in order.
// On a hook error or cancellation it returns the states produced so far.
func Collect[ID comparable, V, S any](g Graph[ID, V], op Operator[V, S, ID], s Scheduler[ID], opts ...Option[ID]) ([]S, error) {
	w, err := New(g, op, s, opts...)
	if err != nil {
		return nil, err
	}

	var out []S
	for st := range w.All() {
		out = append(out, st)
	}

	return out, w.Err()
}

// All returns the remaining states as a range-over-func sequence. Breaking out
// of the loop abandons the traversal; there is nothing to clean up.
func (w *Walker[ID, V, S]) All() iter.Seq[S] {
	return func(yield func(S) bool) {
		for {
			st, ok := w.Next()
			if !ok || !yield(st) {
				return
			}
		}
	}
}

// Err returns the error that ended the traversal early: the context error on
// cancellation, or a wrapped OnVisit error. It is nil after normal exhaustion.
func (w *Walker[ID, V, S]) Err() error { return w.err }

// Phase reports the current state-machine phase.
func (w *Walker[ID, V, S]) Phase() Phase { return w.phase }

// Stats returns a snapshot of the traversal counters.
func (w *Walker[ID, V, S]) Stats() Stats { return w.stats }

// Next produces the next state. It returns ok == false once the traversal is
// done; further calls keep returning false.
func (w *Walker[ID, V, S]) Next() (S, bool) {
	var zero S
	for {
		switch w.phase {
		case PhaseNotStarted:
			w.init()
			w.setPhase(PhaseSeeding)

		case PhaseSeeding:
			if w.opts.HasStart && w.has(w.opts.Start) {
				w.beginRun(w.opts.Start)
				w.setPhase(PhaseDraining)
				continue
			}
			w.setPhase(PhaseCoverage)

		case PhaseDraining:
			if !w.check() {
				return zero, false
			}
			st, ok := w.drain()
			if ok {
				return st, true
			}
			if w.phase == PhaseDone {
				return zero, false
			}
			w.setPhase(PhaseCoverage)

		case PhaseCoverage:
			if root, ok := w.nextRoot(); ok {
				w.beginRun(root)
				w.setPhase(PhaseDraining)
				continue
			}
			w.setPhase(PhaseDone)

		default:
			return zero, false
		}
	}
}

// init allocates per-call state and snapshots the coverage order.
func (w *Walker[ID, V, S]) init() {
	if w.graph != nil {
		w.keys = w.graph.Keys()
	}
	w.visited = make(map[ID]struct{}, len(w.keys))
}

// check enforces cancellation and the visit limit before producing a state.
func (w *Walker[ID, V, S]) check() bool {
	if err := w.opts.Ctx.Err(); err != nil {
		w.fail(err)
		return false
	}
	if w.opts.MaxVisits > 0 && w.stats.Visited >= w.opts.MaxVisits {
		w.hasPending = false
		w.setPhase(PhaseDone)
		return false
	}

	return true
}

// drain expands the previously yielded vertex, then extracts ids until one
// unvisited vertex is found. ok == false means the frontier is exhausted (or
// the walker failed, in which case the phase is PhaseDone).
func (w *Walker[ID, V, S]) drain() (S, bool) {
	var zero S
	if w.hasPending {
		var none V
		w.expand(w.pending)
		w.pending, w.hasPending = none, false
	}

	for !w.sched.IsEmpty() {
		id, ok := w.sched.Pull()
		if !ok {
			break
		}
		if _, seen := w.visited[id]; seen {
			w.stats.Duplicates++
			continue
		}
		v, found := w.lookup(id)
		if !found {
			// only reachable with a scheduler that invents ids
			continue
		}

		w.visited[id] = struct{}{}
		if err := w.opts.OnVisit(id); err != nil {
			w.fail(fmt.Errorf("traverse: OnVisit hook for %v: %w", id, err))
			return zero, false
		}
		w.stats.Visited++
		w.pending, w.hasPending = v, true

		return w.op.State(v), true
	}

	return zero, false
}

// expand schedules every edge target of v that is unvisited and present in
// the graph, all in one step.
func (w *Walker[ID, V, S]) expand(v V) {
	w.buf = w.buf[:0]
	for _, id := range w.op.Edges(v) {
		if _, seen := w.visited[id]; seen {
			continue
		}
		if !w.has(id) {
			w.stats.Dropped++
			continue
		}
		w.buf = append(w.buf, id)
	}
	if len(w.buf) == 0 {
		return
	}

	if w.batch != nil {
		w.batch.AddAll(w.buf)
	} else {
		for _, id := range w.buf {
			w.sched.Add(id)
		}
	}
	for _, id := range w.buf {
		w.opts.OnSchedule(id)
	}
	w.stats.Scheduled += len(w.buf)
}

// nextRoot advances the coverage cursor to the next key that is neither the
// start id nor visited.
func (w *Walker[ID, V, S]) nextRoot() (ID, bool) {
	for w.cursor < len(w.keys) {
		id := w.keys[w.cursor]
		w.cursor++
		if w.opts.HasStart && id == w.opts.Start {
			continue
		}
		if _, seen := w.visited[id]; seen {
			continue
		}

		return id, true
	}

	var zero ID
	return zero, false
}

// beginRun seeds the scheduler with root and opens a new drain run.
func (w *Walker[ID, V, S]) beginRun(root ID) {
	w.stats.Runs++
	w.stats.Scheduled++
	w.sched.Add(root)
	w.opts.OnSchedule(root)
	w.opts.OnRunStart(w.stats.Runs, root)
	if w.opts.Logger != nil {
		w.opts.Logger.Debug("drain run started", slog.Int("run", w.stats.Runs), slog.Any("root", root))
	}
}

func (w *Walker[ID, V, S]) lookup(id ID) (V, bool) {
	if w.graph == nil {
		var zero V
		return zero, false
	}
	return w.graph.Vertex(id)
}

func (w *Walker[ID, V, S]) has(id ID) bool {
	_, ok := w.lookup(id)
	return ok
}

func (w *Walker[ID, V, S]) fail(err error) {
	w.err = err
	w.hasPending = false
	w.setPhase(PhaseDone)
}

func (w *Walker[ID, V, S]) setPhase(p Phase) {
	if w.opts.Logger != nil && p != w.phase {
		w.opts.Logger.Debug("phase transition",
			slog.String("from", w.phase.String()),
			slog.String("to", p.String()),
			slog.Int("visited", w.stats.Visited),
		)
	}
	w.phase = p
}
