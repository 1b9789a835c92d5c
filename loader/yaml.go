package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlBody is the value side of the mapping form.
type yamlBody struct {
	State any      `yaml:"state"`
	Edges []string `yaml:"edges"`
}

// decodeYAML accepts a sequence of records or a mapping keyed by id. The
// mapping form is walked as a yaml.Node so key order survives.
func decodeYAML(data []byte) ([]located, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loader: yaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]

	switch root.Kind {
	case yaml.SequenceNode:
		out := make([]located, 0, len(root.Content))
		for i, item := range root.Content {
			var v Vertex
			if err := item.Decode(&v); err != nil {
				return nil, fmt.Errorf("line %d: vertex #%d: %v: %w", item.Line, i, err, ErrMalformed)
			}
			out = append(out, located{v: v, pos: fmt.Sprintf("line %d: vertex #%d", item.Line, i)})
		}
		return out, nil

	case yaml.MappingNode:
		out := make([]located, 0, len(root.Content)/2)
		for i := 0; i+1 < len(root.Content); i += 2 {
			key, val := root.Content[i], root.Content[i+1]
			var body yamlBody
			if err := val.Decode(&body); err != nil {
				return nil, fmt.Errorf("line %d: vertex %q: %v: %w", key.Line, key.Value, err, ErrMalformed)
			}
			out = append(out, located{
				v:   Vertex{ID: key.Value, State: body.State, Edges: body.Edges},
				pos: fmt.Sprintf("line %d: vertex %q", key.Line, key.Value),
			})
		}
		return out, nil

	case yaml.ScalarNode:
		if root.Tag == "!!null" {
			return nil, nil
		}
	}

	return nil, fmt.Errorf("line %d: expected a sequence or mapping of vertices: %w", root.Line, ErrMalformed)
}
