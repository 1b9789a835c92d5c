package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvtraverse/bfs"
	"github.com/katalvlaran/lvtraverse/core"
	"github.com/katalvlaran/lvtraverse/traverse"
)

type rec = core.Record[string]

var op = core.RecordOperator[string]{}

func mustGraph(t *testing.T, rs ...rec) *core.Graph[string, rec] {
	t.Helper()
	g, err := core.FromRecords(rs...)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	return g
}

// TestBFS_LevelOrder covers the canonical A→[B,C], B→[D] example.
func TestBFS_LevelOrder(t *testing.T) {
	g := mustGraph(t,
		rec{ID: "A", State: "A", Edges: []string{"B", "C"}},
		rec{ID: "B", State: "B", Edges: []string{"D"}},
		rec{ID: "C", State: "C"},
		rec{ID: "D", State: "D"},
	)
	got, err := bfs.Order[string, rec, string](g, op, traverse.WithStart("A"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v; want %v", got, want)
	}
}

// TestBFS_CycleLayers covers a 4-cycle: the start, then both neighbors, then the far vertex.
func TestBFS_CycleLayers(t *testing.T) {
	g := mustGraph(t,
		rec{ID: "A", State: "A", Edges: []string{"B", "D"}},
		rec{ID: "B", State: "B", Edges: []string{"A", "C"}},
		rec{ID: "C", State: "C", Edges: []string{"B", "D"}},
		rec{ID: "D", State: "D", Edges: []string{"C", "A"}},
	)
	got, _ := bfs.Order[string, rec, string](g, op, traverse.WithStart("A"))
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v; want %v", got, want)
	}
}

// TestBFS_Disconnected ensures every component is covered, start component first.
func TestBFS_Disconnected(t *testing.T) {
	g := mustGraph(t,
		rec{ID: "X", State: "X", Edges: []string{"Y"}},
		rec{ID: "Y", State: "Y"},
		rec{ID: "P", State: "P", Edges: []string{"Q"}},
		rec{ID: "Q", State: "Q"},
	)
	gotP, _ := bfs.Order[string, rec, string](g, op, traverse.WithStart("P"))
	if want := []string{"P", "Q", "X", "Y"}; !reflect.DeepEqual(gotP, want) {
		t.Errorf("From P: got %v; want %v", gotP, want)
	}
}

// TestBFS_SelfLoopAndParallelEdges ensures repeated targets are yielded once.
func TestBFS_SelfLoopAndParallelEdges(t *testing.T) {
	g := mustGraph(t,
		rec{ID: "A", State: "A", Edges: []string{"A", "B", "B"}},
		rec{ID: "B", State: "B"},
	)
	w, err := bfs.New[string, rec, string](g, op, traverse.WithStart("A"))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for st := range w.All() {
		got = append(got, st)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
	if d := w.Stats().Duplicates; d != 1 {
		t.Errorf("Duplicates = %d; want 1", d)
	}
}

// TestBFS_HookAbort verifies that an OnVisit error stops the walk and is surfaced.
func TestBFS_HookAbort(t *testing.T) {
	boom := errors.New("boom")
	g := mustGraph(t, rec{ID: "A", Edges: []string{"B"}}, rec{ID: "B"})
	_, err := bfs.Order[string, rec, string](g, op, traverse.WithOnVisit(func(id string) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want boom, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := mustGraph(t, rec{ID: "A", Edges: []string{"B"}}, rec{ID: "B"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.Order[string, rec, string](g, op, traverse.WithContext[string](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentWalkers ensures walkers sharing one graph do not interfere.
func TestBFS_ConcurrentWalkers(t *testing.T) {
	g := mustGraph(t, rec{ID: "A", State: "A", Edges: []string{"B"}}, rec{ID: "B", State: "B"})
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			got, err := bfs.Order[string, rec, string](g, op)
			if err == nil && len(got) != 2 {
				err = errors.New("incomplete walk")
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		if err := <-errs; err != nil {
			t.Errorf("walker #%d: %v", i, err)
		}
	}
}
