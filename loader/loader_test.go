package loader_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtraverse/builder"
	"github.com/katalvlaran/lvtraverse/core"
	"github.com/katalvlaran/lvtraverse/dfs"
	"github.com/katalvlaran/lvtraverse/loader"
	"github.com/katalvlaran/lvtraverse/traverse"
)

var op = core.RecordOperator[any]{}

func TestLoad_DiamondAllFormats(t *testing.T) {
	for _, name := range []string{"diamond.yaml", "diamond.json", "diamond.toml", "diamond.hcl"} {
		t.Run(name, func(t *testing.T) {
			g, err := loader.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C", "D"}, g.Keys())

			a, ok := g.Vertex("A")
			require.True(t, ok)
			assert.Equal(t, "alpha", a.State)
			assert.Equal(t, []string{"B", "C"}, a.Edges)

			states, err := dfs.Order[string, loader.Vertex, any](g, op, traverse.WithStart("A"))
			require.NoError(t, err)
			assert.Equal(t, []any{"alpha", "beta", "delta", "gamma"}, states)
		})
	}
}

func TestLoad_YAMLMappingKeepsKeyOrder(t *testing.T) {
	g, err := loader.Load(filepath.Join("testdata", "mapping.yml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "A", "M"}, g.Keys())

	z, _ := g.Vertex("Z")
	assert.Equal(t, 26, z.State)
	assert.Equal(t, []string{"A", "ghost"}, z.Edges)

	a, _ := g.Vertex("A")
	assert.Equal(t, map[string]any{"name": "first"}, a.State)

	m, _ := g.Vertex("M")
	assert.Nil(t, m.State)
	assert.Empty(t, m.Edges)

	assert.Equal(t, []core.Edge[string]{{From: "Z", To: "ghost"}}, core.Dangling(g, op))
}

func TestParse_StateTypes(t *testing.T) {
	g, err := loader.Parse([]byte(`[{"id":"n","state":5},{"id":"o","state":{"k":[1,true]}}]`), loader.FormatJSON)
	require.NoError(t, err)
	n, _ := g.Vertex("n")
	assert.Equal(t, json.Number("5"), n.State)
	o, _ := g.Vertex("o")
	assert.Equal(t, map[string]any{"k": []any{json.Number("1"), true}}, o.State)

	g, err = loader.Parse([]byte(`
vertex "n" {
  state = 3
}
vertex "o" {
  state = { ok = true, tags = ["x"] }
}
vertex "mixed" {
  state = [1, null, { a = "b" }]
}
vertex "bare" {}
`), loader.FormatHCL)
	require.NoError(t, err)
	n, _ = g.Vertex("n")
	assert.Equal(t, float64(3), n.State)
	o, _ = g.Vertex("o")
	assert.Equal(t, map[string]any{"ok": true, "tags": []any{"x"}}, o.State)
	mixed, _ := g.Vertex("mixed")
	assert.Equal(t, []any{float64(1), nil, map[string]any{"a": "b"}}, mixed.State)
	bare, _ := g.Vertex("bare")
	assert.Nil(t, bare.State)
}

func TestParse_Empty(t *testing.T) {
	for _, f := range loader.Formats {
		g, err := loader.Parse(nil, f)
		require.NoError(t, err, f)
		assert.Zero(t, g.Len(), f)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		format loader.Format
		want   error
	}{
		{"yaml duplicate", "- id: A\n- id: A\n", loader.FormatYAML, loader.ErrDuplicateID},
		{"yaml empty id", "- state: 1\n", loader.FormatYAML, loader.ErrEmptyID},
		{"yaml scalar", "hello\n", loader.FormatYAML, loader.ErrMalformed},
		{"yaml bad edges", "- id: A\n  edges: {x: 1}\n", loader.FormatYAML, loader.ErrMalformed},
		{"json object", `{"id":"A"}`, loader.FormatJSON, loader.ErrMalformed},
		{"json unknown field", `[{"id":"A","weight":1}]`, loader.FormatJSON, loader.ErrMalformed},
		{"json empty id", `[{"id":""}]`, loader.FormatJSON, loader.ErrEmptyID},
		{"toml unknown key", "[[vertex]]\nid = \"A\"\ncolour = \"red\"\n", loader.FormatTOML, loader.ErrMalformed},
		{"toml duplicate", "[[vertex]]\nid = \"A\"\n[[vertex]]\nid = \"A\"\n", loader.FormatTOML, loader.ErrDuplicateID},
		{"hcl syntax", `vertex "A" {`, loader.FormatHCL, loader.ErrMalformed},
		{"hcl unknown block", `edge "A" {}`, loader.FormatHCL, loader.ErrMalformed},
		{"hcl duplicate", "vertex \"A\" {}\nvertex \"A\" {}\n", loader.FormatHCL, loader.ErrDuplicateID},
		{"unknown format", "", loader.Format("xml"), loader.ErrUnsupportedFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := loader.Parse([]byte(tc.data), tc.format)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := loader.Load("graph.xml")
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)

	_, err = loader.Load(filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]loader.Format{
		"g.yaml": loader.FormatYAML, "g.YML": loader.FormatYAML,
		"g.json": loader.FormatJSON, "dir/g.toml": loader.FormatTOML, "g.hcl": loader.FormatHCL,
	} {
		got, err := loader.FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	f, err := loader.ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, loader.FormatYAML, f)
}

func TestEncode_ParsesBack(t *testing.T) {
	src, err := builder.Build(builder.Cycle(3), builder.WithPrefix("v"), builder.WithDangling(1))
	require.NoError(t, err)

	for _, f := range loader.Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, loader.Encode(&buf, src, f))

			g, err := loader.Parse(buf.Bytes(), f)
			require.NoError(t, err, buf.String())
			assert.Equal(t, src.Keys(), g.Keys())
			for id, want := range src.Range() {
				got, _ := g.Vertex(id)
				assert.Equal(t, want.State, got.State)
				assert.Equal(t, want.Edges, got.Edges)
			}
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	g := core.New[string, core.Record[string]](0)
	assert.ErrorIs(t, loader.Encode(&bytes.Buffer{}, g, "xml"), loader.ErrUnsupportedFormat)
}
