package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvtraverse/scheduler"
	"github.com/katalvlaran/lvtraverse/traverse"
)

// compile-time contract checks
var (
	_ traverse.BatchScheduler[string] = (*scheduler.Stack[string])(nil)
	_ traverse.Scheduler[string]      = (*scheduler.Queue[string])(nil)
	_ traverse.Scheduler[string]      = (*scheduler.DedupQueue[string])(nil)
	_ traverse.Scheduler[int]         = (*scheduler.Priority[int])(nil)
	_ traverse.Scheduler[string]      = scheduler.Func[string]{}
)

func drain[ID comparable](s traverse.Scheduler[ID]) []ID {
	var out []ID
	for !s.IsEmpty() {
		id, ok := s.Pull()
		if !ok {
			break
		}
		out = append(out, id)
	}

	return out
}

// ContractSuite runs the shared scheduler contract against one implementation.
type ContractSuite struct {
	suite.Suite
	factory func() traverse.Scheduler[string]
}

func (s *ContractSuite) TestEmptyPullReturnsAbsent() {
	sc := s.factory()
	s.True(sc.IsEmpty())
	id, ok := sc.Pull()
	s.False(ok)
	s.Equal("", id)
}

func (s *ContractSuite) TestAddThenPullEverything() {
	sc := s.factory()
	for _, id := range []string{"a", "b", "c"} {
		sc.Add(id)
	}
	s.False(sc.IsEmpty())
	s.ElementsMatch([]string{"a", "b", "c"}, drain(sc))
	s.True(sc.IsEmpty())

	_, ok := sc.Pull()
	s.False(ok, "pull after drain must report absent")
}

func TestContract(t *testing.T) {
	impls := map[string]func() traverse.Scheduler[string]{
		"stack": func() traverse.Scheduler[string] { return scheduler.NewStack[string]() },
		"queue": func() traverse.Scheduler[string] { return scheduler.NewQueue[string]() },
		"dedup": func() traverse.Scheduler[string] { return scheduler.NewDedupQueue[string]() },
		"priority": func() traverse.Scheduler[string] {
			return scheduler.NewPriority(func(a, b string) bool { return a < b })
		},
	}
	for name, mk := range impls {
		t.Run(name, func(t *testing.T) {
			suite.Run(t, &ContractSuite{factory: mk})
		})
	}
}

func TestStack_LIFOAndBatchReverse(t *testing.T) {
	s := scheduler.NewStack[string]()
	s.Add("a")
	s.Add("b")
	s.AddAll([]string{"x", "y", "z"})

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []string{"x", "y", "z", "b", "a"}, drain[string](s))

	s.Add("q")
	s.Reset()
	assert.True(t, s.IsEmpty())
}

func TestQueue_FIFOAcrossGrowth(t *testing.T) {
	q := scheduler.NewQueue[int]()
	var want []int
	// interleave to force wrap-around before growth
	for i := 0; i < 5; i++ {
		q.Add(i)
	}
	for i := 0; i < 3; i++ {
		id, ok := q.Pull()
		assert.True(t, ok)
		assert.Equal(t, i, id)
	}
	for i := 5; i < 40; i++ {
		q.Add(i)
	}
	for i := 3; i < 40; i++ {
		want = append(want, i)
	}

	assert.Equal(t, 37, q.Len())
	assert.Equal(t, want, drain[int](q))

	q.Add(1)
	q.Reset()
	assert.True(t, q.IsEmpty())
}

func TestDedupQueue_DropsPendingDuplicates(t *testing.T) {
	d := scheduler.NewDedupQueue[string]()
	for _, id := range []string{"a", "b", "a", "c", "b"} {
		d.Add(id)
	}
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"a", "b", "c"}, drain[string](d))

	// once pulled, an id may be queued again
	d.Add("a")
	id, ok := d.Pull()
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	d.Add("z")
	d.Reset()
	assert.True(t, d.IsEmpty())
	d.Add("z")
	assert.Equal(t, 1, d.Len(), "reset must forget pending ids")
}

func TestPriority_OrderAndStableTies(t *testing.T) {
	type task struct {
		name string
		prio int
	}
	p := scheduler.NewPriority(func(a, b task) bool { return a.prio < b.prio })
	for _, tk := range []task{{"low", 5}, {"first", 1}, {"mid-a", 3}, {"mid-b", 3}, {"mid-c", 3}} {
		p.Add(tk)
	}

	var names []string
	for _, tk := range drain[task](p) {
		names = append(names, tk.name)
	}
	assert.Equal(t, []string{"first", "mid-a", "mid-b", "mid-c", "low"}, names)
}

func TestPriority_NilLessIsFIFO(t *testing.T) {
	p := scheduler.NewPriority[string](nil)
	for _, id := range []string{"c", "a", "b"} {
		p.Add(id)
	}
	assert.Equal(t, []string{"c", "a", "b"}, drain[string](p))

	p.Add("x")
	p.Reset()
	assert.Zero(t, p.Len())
}

func TestFunc_NilClosures(t *testing.T) {
	var f scheduler.Func[string]
	assert.True(t, f.IsEmpty())
	f.Add("ignored")
	_, ok := f.Pull()
	assert.False(t, ok)
}
