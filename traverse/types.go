// File: types.go
// Role: contracts consumed by the engine (Graph, Operator, Scheduler),
// functional options and sentinel errors.

package traverse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for walker construction and execution.
var (
	// ErrOperatorNil is returned when a nil Operator is supplied.
	ErrOperatorNil = errors.New("traverse: operator is nil")

	// ErrSchedulerNil is returned when a nil Scheduler is supplied.
	ErrSchedulerNil = errors.New("traverse: scheduler is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Graph is a read-only mapping from vertex identifier to vertex record.
// Keys must enumerate every identifier exactly once, in the graph's natural
// (insertion) order. The graph must not change while a Walker is running.
type Graph[ID comparable, V any] interface {
	// Vertex returns the record stored under id and whether it exists.
	Vertex(id ID) (V, bool)

	// Keys returns all identifiers in natural enumeration order.
	Keys() []ID
}

// Operator extracts identity, state and outgoing edges from an opaque vertex
// record. Implementations must be pure: same input, same output, no side effects.
type Operator[V, S any, ID comparable] interface {
	// ID returns the vertex's own identifier.
	// The engine never calls it; identifiers travel with graph keys and the scheduler.
	ID(v V) ID

	// State returns the value emitted for the vertex.
	State(v V) S

	// Edges returns the ordered identifiers of adjacent vertices.
	Edges(v V) []ID
}

// OperatorFuncs adapts three plain functions to Operator.
// Nil IDFunc / StateFunc yield the zero value; nil EdgesFunc means no edges.
type OperatorFuncs[V, S any, ID comparable] struct {
	IDFunc    func(V) ID
	StateFunc func(V) S
	EdgesFunc func(V) []ID
}

// ID implements Operator.
func (f OperatorFuncs[V, S, ID]) ID(v V) ID {
	if f.IDFunc == nil {
		var zero ID
		return zero
	}
	return f.IDFunc(v)
}

// State implements Operator.
func (f OperatorFuncs[V, S, ID]) State(v V) S {
	if f.StateFunc == nil {
		var zero S
		return zero
	}
	return f.StateFunc(v)
}

// Edges implements Operator.
func (f OperatorFuncs[V, S, ID]) Edges(v V) []ID {
	if f.EdgesFunc == nil {
		return nil
	}
	return f.EdgesFunc(v)
}

// Scheduler is the frontier of pending identifiers. Where Add places an id and
// which id Pull removes defines the traversal order; the scheduler knows
// nothing about the graph or visitation state.
//
// The frontier may hold duplicates and ids that were visited since they were
// added; the engine discards those on extraction.
type Scheduler[ID comparable] interface {
	// IsEmpty reports whether no pending identifiers remain.
	IsEmpty() bool

	// Add inserts id into the frontier.
	Add(id ID)

	// Pull removes and returns one id chosen by policy.
	// It returns ok == false only when the frontier is empty.
	Pull() (id ID, ok bool)
}

// BatchScheduler is a Scheduler that wants to see all eligible edges of one
// vertex at once, in declared order. A stack uses it to push them reversed so
// that popping preserves left-to-right order.
type BatchScheduler[ID comparable] interface {
	Scheduler[ID]

	// AddAll inserts ids, which are given in the vertex's declared edge order.
	AddAll(ids []ID)
}

// Phase is the walker's position in its state machine:
// NotStarted → Seeding → Draining (once per run) → Coverage → Done.
type Phase int

// Walker phases.
const (
	PhaseNotStarted Phase = iota // nothing pulled yet
	PhaseSeeding                 // start id being scheduled
	PhaseDraining                // extract-and-expand loop of one run
	PhaseCoverage                // scanning graph keys for unvisited vertices
	PhaseDone                    // exhausted, cancelled or aborted
)

// String returns a short lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseSeeding:
		return "seeding"
	case PhaseDraining:
		return "draining"
	case PhaseCoverage:
		return "coverage"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Stats reports counters collected during a traversal.
type Stats struct {
	// Visited is the number of states produced so far.
	Visited int

	// Runs is the number of drain runs started (seeded start plus coverage roots).
	Runs int

	// Scheduled counts ids handed to the scheduler.
	Scheduled int

	// Duplicates counts extractions discarded because the id was already visited.
	Duplicates int

	// Dropped counts edge targets ignored because they are absent from the graph.
	Dropped int
}

// Option configures a Walker via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option[ID comparable] func(*Options[ID])

// Options holds the parameters and callbacks of one traversal.
type Options[ID comparable] struct {
	// Ctx allows cancellation; checked once per produced state.
	Ctx context.Context

	// Start is the optional start id; only meaningful when HasStart is true.
	Start    ID
	HasStart bool

	// OnSchedule is called for every id handed to the scheduler.
	OnSchedule func(id ID)

	// OnVisit is called when a vertex is marked visited, before its state is
	// produced. Returning an error ends the traversal with that error.
	OnVisit func(id ID) error

	// OnRunStart is called when a drain run begins; run counts from 1.
	OnRunStart func(run int, root ID)

	// MaxVisits, if > 0, ends the traversal after that many states.
	MaxVisits int

	// Logger, if non-nil, receives debug records about phases and runs.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with a background context, no start id,
// no-op hooks and no visit limit.
func DefaultOptions[ID comparable]() Options[ID] {
	return Options[ID]{
		Ctx:        context.Background(),
		OnSchedule: func(ID) {},
		OnVisit:    func(ID) error { return nil },
		OnRunStart: func(int, ID) {},
	}
}

// WithStart sets the start identifier. An id absent from the graph is not an
// error: the traversal proceeds with the coverage phase alone.
func WithStart[ID comparable](id ID) Option[ID] {
	return func(o *Options[ID]) {
		o.Start = id
		o.HasStart = true
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext[ID comparable](ctx context.Context) Option[ID] {
	return func(o *Options[ID]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSchedule registers a callback invoked for every scheduled id.
func WithOnSchedule[ID comparable](fn func(id ID)) Option[ID] {
	return func(o *Options[ID]) {
		if fn != nil {
			o.OnSchedule = fn
		}
	}
}

// WithOnVisit registers a callback invoked on every visit; returning an error
// stops the traversal.
func WithOnVisit[ID comparable](fn func(id ID) error) Option[ID] {
	return func(o *Options[ID]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRunStart registers a callback invoked whenever a drain run begins.
func WithOnRunStart[ID comparable](fn func(run int, root ID)) Option[ID] {
	return func(o *Options[ID]) {
		if fn != nil {
			o.OnRunStart = fn
		}
	}
}

// WithMaxVisits limits the number of produced states.
//
//	n > 0: stop after n states
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxVisits[ID comparable](n int) Option[ID] {
	return func(o *Options[ID]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// WithLogger sets a logger for debug records. Nil disables logging.
func WithLogger[ID comparable](l *slog.Logger) Option[ID] {
	return func(o *Options[ID]) {
		o.Logger = l
	}
}
