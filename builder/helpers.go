package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvtraverse/core"
)

const danglingPrefix = "missing-"

// addVertices inserts records cfg.id(0..n-1), each with State equal to its id.
func addVertices(g *Graph, method string, n int, cfg builderConfig) error {
	for i := 0; i < n; i++ {
		id := cfg.id(i)
		if err := core.AddRecord(g, core.Record[string]{ID: id, State: id}); err != nil {
			return fmt.Errorf("%s: add %q: %w", method, id, err)
		}
	}

	return nil
}

// addEdge appends to to from's edge list, plus the reverse arc when the
// config asks for it. Both endpoints must already exist.
func addEdge(g *Graph, cfg builderConfig, from, to string) {
	appendEdge(g, from, to)
	if cfg.bidirectional && from != to {
		appendEdge(g, to, from)
	}
}

func appendEdge(g *Graph, from, to string) {
	r, ok := g.Vertex(from)
	if !ok {
		return
	}
	r.Edges = append(r.Edges, to)
	g.Set(from, r)
}

// addDangling spreads k edges to absent targets over g's keys round-robin.
func addDangling(g *Graph, k int) {
	keys := g.Keys()
	if len(keys) == 0 {
		return
	}
	for i := 0; i < k; i++ {
		appendEdge(g, keys[i%len(keys)], danglingPrefix+strconv.Itoa(i))
	}
}
