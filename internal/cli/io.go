package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/beetlebugorg/seageom/pkg/geometry"
)

// readInput reads path, or r when path is "-" or empty.
func readInput(r io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// readFeatures reads and decodes a GeoJSON document.
func readFeatures(r io.Reader, path string, opts geometry.DecodeOptions) ([]geometry.Feature, error) {
	data, err := readInput(r, path)
	if err != nil {
		return nil, err
	}
	return geometry.DecodeFeatures(data, opts)
}

// writeDocument encodes v to w as "json" or "yaml".
func writeDocument(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("output format %q: want json or yaml", format)
	}
}
