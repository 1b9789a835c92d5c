package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the top-level structure of an HCL graph document.
type hclFile struct {
	Vertices []*hclVertex `hcl:"vertex,block"`
}

// hclVertex is one `vertex "<id>" { ... }` block.
type hclVertex struct {
	ID    string    `hcl:"id,label"`
	State cty.Value `hcl:"state,optional"`
	Edges []string  `hcl:"edges,optional"`
}

func decodeHCL(data []byte, filename string) ([]located, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("loader: failed to parse HCL: %v: %w", diags, ErrMalformed)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("loader: failed to decode HCL: %v: %w", diags, ErrMalformed)
	}

	out := make([]located, 0, len(parsed.Vertices))
	for i, b := range parsed.Vertices {
		state, err := ctyValueToInterface(b.State)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: state: %v: %w", b.ID, err, ErrMalformed)
		}
		out = append(out, located{
			v:   Vertex{ID: b.ID, State: state, Edges: b.Edges},
			pos: fmt.Sprintf("vertex block #%d", i),
		})
	}

	return out, nil
}

// ctyValueToInterface converts a cty.Value into plain Go values: string,
// float64, bool, []any and map[string]any. Null and unknown become nil.
func ctyValueToInterface(val cty.Value) (any, error) {
	if !val.IsKnown() || val.IsNull() {
		return nil, nil
	}

	switch ty := val.Type(); {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty.IsObjectType(), ty.IsMapType():
		fields := val.AsValueMap()
		out := make(map[string]any, len(fields))
		for k, v := range fields {
			elem, err := ctyValueToInterface(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = elem
		}
		return out, nil
	case ty.IsTupleType(), ty.IsListType(), ty.IsSetType():
		items := val.AsValueSlice()
		out := make([]any, len(items))
		for i, v := range items {
			elem, err := ctyValueToInterface(v)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = elem
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", ty.FriendlyName())
	}
}
