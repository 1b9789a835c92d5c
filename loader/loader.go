package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvtraverse/core"
)

// Sentinel errors; position context is attached with %w.
var (
	// ErrUnsupportedFormat is returned for an unknown file extension or
	// format name.
	ErrUnsupportedFormat = errors.New("loader: unsupported format")

	// ErrMalformed wraps decoder failures and documents of the wrong shape.
	ErrMalformed = errors.New("loader: malformed document")

	// ErrEmptyID is returned for a vertex without an id.
	ErrEmptyID = errors.New("loader: vertex id is empty")

	// ErrDuplicateID is returned when two vertices share an id.
	ErrDuplicateID = errors.New("loader: duplicate vertex id")
)

// Format names a document encoding.
type Format string

const (
	// FormatYAML is gopkg.in/yaml.v3; extensions .yaml and .yml.
	FormatYAML Format = "yaml"
	// FormatJSON is encoding/json with numbers kept as json.Number; extension .json.
	FormatJSON Format = "json"
	// FormatTOML uses [[vertex]] tables; extension .toml.
	FormatTOML Format = "toml"
	// FormatHCL uses vertex "id" blocks; extension .hcl.
	FormatHCL Format = "hcl"
)

// Formats lists every supported format.
var Formats = []Format{FormatYAML, FormatJSON, FormatTOML, FormatHCL}

// Vertex is the record shape documents decode into. State keeps whatever the
// format produced: strings, numbers, booleans, lists or maps.
type Vertex = core.Record[any]

// Graph is the graph type Load and Parse return.
type Graph = core.Graph[string, Vertex]

// FormatOf maps a file extension to its Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".hcl":
		return FormatHCL, nil
	}

	return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
}

// ParseFormat validates a format name such as "yaml" or "YML".
func ParseFormat(name string) (Format, error) {
	return FormatOf("x." + name)
}

// Load reads the file at path and parses it according to its extension.
func Load(path string) (*Graph, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	g, err := parse(data, format, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Graph, error) {
	return parse(data, format, "input."+string(format))
}

func parse(data []byte, format Format, name string) (*Graph, error) {
	var (
		vs  []located
		err error
	)
	switch format {
	case FormatYAML:
		vs, err = decodeYAML(data)
	case FormatJSON:
		vs, err = decodeJSON(data)
	case FormatTOML:
		vs, err = decodeTOML(data)
	case FormatHCL:
		vs, err = decodeHCL(data, name)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	return assemble(vs)
}

// located pairs a decoded vertex with a human-readable position.
type located struct {
	v   Vertex
	pos string
}

// assemble validates ids and inserts vertices in document order.
func assemble(vs []located) (*Graph, error) {
	g := core.New[string, Vertex](len(vs))
	for _, lv := range vs {
		if lv.v.ID == "" {
			return nil, fmt.Errorf("%s: %w", lv.pos, ErrEmptyID)
		}
		if err := g.Add(lv.v.ID, lv.v); err != nil {
			if errors.Is(err, core.ErrDuplicateVertex) {
				return nil, fmt.Errorf("%s: %q: %w", lv.pos, lv.v.ID, ErrDuplicateID)
			}
			return nil, err
		}
	}

	return g, nil
}
