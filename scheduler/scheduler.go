// Package scheduler provides reference frontier implementations for the
// traversal engine: a stack (depth-first), a queue (breadth-first), a
// de-duplicating queue, a priority heap and a closure adapter.
package scheduler

import (
	"container/heap"
)

// Stack is a last-in-first-out frontier. Used by the engine it produces a
// depth-first walk that keeps the declared left-to-right edge order, because
// AddAll pushes a vertex's edges in reverse.
type Stack[ID comparable] struct {
	items []ID
}

// NewStack returns an empty Stack.
func NewStack[ID comparable]() *Stack[ID] {
	return &Stack[ID]{}
}

// IsEmpty reports whether the stack holds no ids.
func (s *Stack[ID]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of pending ids.
func (s *Stack[ID]) Len() int { return len(s.items) }

// Add pushes id on top.
func (s *Stack[ID]) Add(id ID) { s.items = append(s.items, id) }

// AddAll pushes ids in reverse so that ids[0] ends up on top.
func (s *Stack[ID]) AddAll(ids []ID) {
	for i := len(ids) - 1; i >= 0; i-- {
		s.items = append(s.items, ids[i])
	}
}

// Pull pops the top id; ok is false when the stack is empty.
func (s *Stack[ID]) Pull() (ID, bool) {
	var zero ID
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	id := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return id, true
}

// Reset drops every pending id.
func (s *Stack[ID]) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}

// Queue is a first-in-first-out frontier backed by a growable ring buffer.
// Used by the engine it produces a breadth-first walk.
type Queue[ID comparable] struct {
	buf  []ID
	head int
	n    int
}

// NewQueue returns an empty Queue.
func NewQueue[ID comparable]() *Queue[ID] {
	return &Queue[ID]{}
}

// IsEmpty reports whether the queue holds no ids.
func (q *Queue[ID]) IsEmpty() bool { return q.n == 0 }

// Len returns the number of pending ids.
func (q *Queue[ID]) Len() int { return q.n }

// Add appends id at the tail.
func (q *Queue[ID]) Add(id ID) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = id
	q.n++
}

// Pull removes the head id; ok is false when the queue is empty.
func (q *Queue[ID]) Pull() (ID, bool) {
	var zero ID
	if q.n == 0 {
		return zero, false
	}
	id := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.n--

	return id, true
}

// Reset drops every pending id.
func (q *Queue[ID]) Reset() {
	clear(q.buf)
	q.head, q.n = 0, 0
}

// grow doubles the ring, unwrapping it so head moves to index 0.
func (q *Queue[ID]) grow() {
	size := 2 * len(q.buf)
	if size == 0 {
		size = 8
	}
	next := make([]ID, size)
	for i := 0; i < q.n; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf, q.head = next, 0
}

// DedupQueue is a Queue that ignores an id while the same id is still
// pending. For a FIFO frontier the first copy is always extracted first, so
// dropping later copies changes neither the visit order nor the visit count;
// it only bounds the frontier to one entry per vertex.
type DedupQueue[ID comparable] struct {
	q       Queue[ID]
	pending map[ID]struct{}
}

// NewDedupQueue returns an empty DedupQueue.
func NewDedupQueue[ID comparable]() *DedupQueue[ID] {
	return &DedupQueue[ID]{pending: make(map[ID]struct{})}
}

// IsEmpty reports whether the queue holds no ids.
func (d *DedupQueue[ID]) IsEmpty() bool { return d.q.IsEmpty() }

// Len returns the number of pending ids.
func (d *DedupQueue[ID]) Len() int { return d.q.Len() }

// Add appends id unless it is already pending.
func (d *DedupQueue[ID]) Add(id ID) {
	if _, dup := d.pending[id]; dup {
		return
	}
	d.pending[id] = struct{}{}
	d.q.Add(id)
}

// Pull removes the head id; ok is false when the queue is empty.
func (d *DedupQueue[ID]) Pull() (ID, bool) {
	id, ok := d.q.Pull()
	if ok {
		delete(d.pending, id)
	}

	return id, ok
}

// Reset drops every pending id.
func (d *DedupQueue[ID]) Reset() {
	d.q.Reset()
	clear(d.pending)
}

// Priority is a frontier that always extracts the smallest pending id
// according to less. Ids that compare equal come out in insertion order.
type Priority[ID comparable] struct {
	h prioHeap[ID]
}

// NewPriority returns an empty Priority ordered by less.
// A nil less makes Priority behave like a FIFO queue.
func NewPriority[ID comparable](less func(a, b ID) bool) *Priority[ID] {
	if less == nil {
		less = func(ID, ID) bool { return false }
	}

	return &Priority[ID]{h: prioHeap[ID]{less: less}}
}

// IsEmpty reports whether no ids are pending.
func (p *Priority[ID]) IsEmpty() bool { return len(p.h.items) == 0 }

// Len returns the number of pending ids.
func (p *Priority[ID]) Len() int { return len(p.h.items) }

// Add inserts id.
func (p *Priority[ID]) Add(id ID) {
	heap.Push(&p.h, prioItem[ID]{id: id, seq: p.h.seq})
	p.h.seq++
}

// Pull removes the smallest id; ok is false when nothing is pending.
func (p *Priority[ID]) Pull() (ID, bool) {
	if len(p.h.items) == 0 {
		var zero ID
		return zero, false
	}
	it := heap.Pop(&p.h).(prioItem[ID])

	return it.id, true
}

// Reset drops every pending id.
func (p *Priority[ID]) Reset() {
	p.h.items = p.h.items[:0]
	p.h.seq = 0
}

// prioItem pairs an id with its insertion sequence for stable ordering.
type prioItem[ID comparable] struct {
	id  ID
	seq uint64
}

// prioHeap implements heap.Interface over prioItem.
type prioHeap[ID comparable] struct {
	items []prioItem[ID]
	less  func(a, b ID) bool
	seq   uint64
}

func (h *prioHeap[ID]) Len() int { return len(h.items) }

func (h *prioHeap[ID]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.id, b.id) {
		return true
	}
	if h.less(b.id, a.id) {
		return false
	}

	return a.seq < b.seq
}

func (h *prioHeap[ID]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *prioHeap[ID]) Push(x any) { h.items = append(h.items, x.(prioItem[ID])) }

func (h *prioHeap[ID]) Pop() any {
	n := len(h.items)
	it := h.items[n-1]
	h.items = h.items[:n-1]

	return it
}

// Func adapts three closures to a scheduler, for ad-hoc frontiers.
// Nil IsEmptyFunc reports empty; nil PullFunc reports nothing pending;
// nil AddFunc discards ids.
type Func[ID comparable] struct {
	IsEmptyFunc func() bool
	AddFunc     func(id ID)
	PullFunc    func() (ID, bool)
}

// IsEmpty implements the scheduler contract.
func (f Func[ID]) IsEmpty() bool {
	if f.IsEmptyFunc == nil {
		return true
	}
	return f.IsEmptyFunc()
}

// Add implements the scheduler contract.
func (f Func[ID]) Add(id ID) {
	if f.AddFunc != nil {
		f.AddFunc(id)
	}
}

// Pull implements the scheduler contract.
func (f Func[ID]) Pull() (ID, bool) {
	if f.PullFunc == nil {
		var zero ID
		return zero, false
	}
	return f.PullFunc()
}
