package loader

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// tomlDoc is the [[vertex]] array-of-tables shape.
type tomlDoc struct {
	Vertex []Vertex `toml:"vertex"`
}

func decodeTOML(data []byte) ([]located, error) {
	var doc tomlDoc
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("loader: toml: %v: %w", err, ErrMalformed)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("loader: toml: unknown key %q: %w", undecoded[0].String(), ErrMalformed)
	}

	out := make([]located, len(doc.Vertex))
	for i, v := range doc.Vertex {
		out[i] = located{v: v, pos: fmt.Sprintf("[[vertex]] #%d", i)}
	}

	return out, nil
}
