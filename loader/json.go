package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeJSON reads a top-level array of records. Numbers stay json.Number so
// integer states keep their text.
func decodeJSON(data []byte) ([]located, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var vs []Vertex
	if err := dec.Decode(&vs); err != nil {
		return nil, fmt.Errorf("loader: json: %v: %w", err, ErrMalformed)
	}
	out := make([]located, len(vs))
	for i, v := range vs {
		out[i] = located{v: v, pos: fmt.Sprintf("vertex #%d", i)}
	}

	return out, nil
}
