package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of document loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
}

// LoadFromFile loads a Document from a YAML file
func LoadFromFile(path string, opts LoadOptions) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		doc.ResolvePaths(NewPathResolver(filepath.Dir(path)))
	}

	if opts.ValidateImmediately {
		if errs := doc.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors: %v", errs)
		}
	}

	return doc, nil
}

// SaveToFile saves a Document to a YAML file
func SaveToFile(doc *Document, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths resolves the mesh path relative to the resolver's base directory
func (d *Document) ResolvePaths(resolver *PathResolver) {
	d.Mesh.Path = resolver.ResolvePath(d.Mesh.Path)
}
