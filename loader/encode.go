package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtraverse/core"
)

// Encode writes g as a document in the given format, in key order. The output
// parses back with Parse into the same keys, states and edges.
func Encode[S any](w io.Writer, g *core.Graph[string, core.Record[S]], format Format) error {
	records := make([]core.Record[S], 0, g.Len())
	for _, r := range g.Range() {
		records = append(records, r)
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("loader: yaml: %w", err)
		}
		return enc.Close()

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)

	case FormatTOML:
		doc := struct {
			Vertex []core.Record[S] `toml:"vertex"`
		}{Vertex: records}
		return toml.NewEncoder(w).Encode(doc)

	case FormatHCL:
		return encodeHCL(w, records)
	}

	return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
}

func encodeHCL[S any](w io.Writer, records []core.Record[S]) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, r := range records {
		if i > 0 {
			body.AppendNewline()
		}
		blk := body.AppendNewBlock("vertex", []string{r.ID}).Body()

		state, err := interfaceToCty(any(r.State))
		if err != nil {
			return fmt.Errorf("loader: hcl: vertex %q: %w", r.ID, err)
		}
		if !state.IsNull() {
			blk.SetAttributeValue("state", state)
		}
		if len(r.Edges) > 0 {
			edges := make([]cty.Value, len(r.Edges))
			for j, e := range r.Edges {
				edges[j] = cty.StringVal(e)
			}
			blk.SetAttributeValue("edges", cty.ListVal(edges))
		}
	}
	_, err := w.Write(f.Bytes())

	return err
}

// interfaceToCty is the inverse of ctyValueToInterface for decoded document
// values; other Go values go through gocty's implied type.
func interfaceToCty(v any) (cty.Value, error) {
	switch x := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(x), nil
	case bool:
		return cty.BoolVal(x), nil
	case json.Number:
		return cty.ParseNumberVal(x.String())
	case []any:
		if len(x) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(x))
		for i, e := range x {
			ev, err := interfaceToCty(e)
			if err != nil {
				return cty.NilVal, err
			}
			elems[i] = ev
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(x) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(x))
		for k, e := range x {
			ev, err := interfaceToCty(e)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[k] = ev
		}
		return cty.ObjectVal(attrs), nil
	}

	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, err
	}

	return gocty.ToCtyValue(v, ty)
}
