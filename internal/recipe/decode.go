package recipe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sugawarayuuta/sonnet"
	"gopkg.in/yaml.v3"
)

// Format identifies a recipe encoding.
type Format string

// Supported formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// decodeFunc decodes one document from r into v.
type decodeFunc func(r io.Reader, v any) error

var decoders = map[Format]decodeFunc{
	TOML: decodeTOML,
	YAML: decodeYAML,
	JSON: decodeJSON,
}

func decodeTOML(r io.Reader, v any) error {
	return toml.NewDecoder(r).DisallowUnknownFields().Decode(v)
}

func decodeYAML(r io.Reader, v any) error {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(v); err != io.EOF {
		return err
	}
	// An empty document decodes to the zero recipe.
	return nil
}

func decodeJSON(r io.Reader, v any) error {
	d := sonnet.NewDecoder(r)
	d.DisallowUnknownFields()
	return d.Decode(v)
}

// FormatOf returns the format implied by the extension of path:
// .toml, .yaml, .yml or .json, in any case.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Decode reads a recipe encoded in format from r.
func Decode(r io.Reader, format Format) (*Recipe, error) {
	decode, ok := decoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	var rec Recipe
	if err := decode(r, &rec); err != nil {
		return nil, fmt.Errorf("recipe: decode %s: %w", format, err)
	}
	return &rec, nil
}

// Load reads the recipe file at path, choosing the decoder from its
// extension. Errors are wrapped with the path.
func Load(path string) (*Recipe, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) // #nosec G304 -- reading the user's recipe is the point
	if err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}
	defer f.Close()

	rec, err := Decode(bufio.NewReader(f), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if rec.Name == "" {
		rec.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return rec, nil
}
