package traverse_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvtraverse/core"
	"github.com/katalvlaran/lvtraverse/traverse"
)

// chain builds v0→v1→…→v(n-1).
func chain(n int) *strGraph {
	g := core.New[string, core.Record[string]](n)
	for i := 0; i < n; i++ {
		id := "v" + strconv.Itoa(i)
		r := core.Record[string]{ID: id, State: id}
		if i+1 < n {
			r.Edges = []string{"v" + strconv.Itoa(i+1)}
		}
		_ = g.Add(id, r)
	}

	return g
}

func benchmarkWalk(b *testing.B, mk func() traverse.Scheduler[string]) {
	g := chain(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range traverse.Traverse[string, core.Record[string], string](g, op, mk(), traverse.WithStart("v0")) {
		}
	}
}

// BenchmarkWalk_Chain_Stack measures a depth-first walk of a 10k chain.
func BenchmarkWalk_Chain_Stack(b *testing.B) { benchmarkWalk(b, stack) }

// BenchmarkWalk_Chain_Queue measures a breadth-first walk of a 10k chain.
func BenchmarkWalk_Chain_Queue(b *testing.B) { benchmarkWalk(b, queue) }
