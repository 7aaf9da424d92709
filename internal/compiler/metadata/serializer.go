package metadata

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
)

// Format is a manifest encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the manifest encoding from a file extension.
// A trailing ".gz" is ignored; anything that is not YAML is read as JSON.
func FormatForPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".gz")))
	if ext == ".yaml" || ext == ".yml" {
		return FormatYAML
	}
	return FormatJSON
}

// Load reads and validates the manifest at path. Files ending in ".gz" are
// decompressed first. Every failure is reported as a CFG002 diagnostic.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.NewInvalidManifest(path, err.Error())
	}

	if strings.HasSuffix(path, ".gz") {
		data, err = Decompress(data)
		if err != nil {
			return nil, errors.NewInvalidManifest(path, err.Error())
		}
	}

	manifest, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, errors.NewInvalidManifest(path, err.Error())
	}
	if err := manifest.Validate(); err != nil {
		return nil, errors.NewInvalidManifest(path, err.Error())
	}
	return manifest, nil
}

// Decode parses manifest data in the given format
func Decode(data []byte, format Format) (*Manifest, error) {
	var manifest Manifest
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("failed to parse YAML manifest: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("failed to parse JSON manifest: %w", err)
		}
	}
	return &manifest, nil
}

// Validate checks that every component has a unique tag name and every
// property and event is named.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Components))
	for i, c := range m.Components {
		if c.TagName == "" {
			return fmt.Errorf("component #%d has no tagName", i+1)
		}
		if seen[c.TagName] {
			return fmt.Errorf("component %q is declared more than once", c.TagName)
		}
		seen[c.TagName] = true

		for j, p := range c.Properties {
			if p.Name == "" {
				return fmt.Errorf("component %q property #%d has no name", c.TagName, j+1)
			}
		}
		for j, e := range c.Events {
			if e.Name == "" {
				return fmt.Errorf("component %q event #%d has no name", c.TagName, j+1)
			}
		}
	}
	return nil
}

// Serialize converts a manifest to indented JSON.
// The output is deterministic - same input will always produce the same output.
func Serialize(manifest *Manifest) ([]byte, error) {
	if manifest == nil {
		return nil, fmt.Errorf("manifest cannot be nil")
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize manifest: %w", err)
	}
	return data, nil
}

// Compress compresses data using gzip compression
func Compress(data []byte) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("data cannot be nil")
	}

	var buf bytes.Buffer
	writer, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip writer: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close() // Ignore close error when write failed
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}

	// Close the writer to flush any remaining data
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close gzip writer: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses gzip-compressed data
func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("compressed data is empty")
	}

	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer func() {
		_ = reader.Close() // Ignore close error - we already have the data
	}()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress data: %w", err)
	}
	return decompressed, nil
}
