package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project file looked up in a project directory.
const FileName = "roadassets.yaml"

// Load reads a project definition from a YAML file.
// Unknown keys are rejected so typos in style or field names surface early.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	p := Default()
	p.Layers = nil
	p.Map.BaseLayers = nil
	p.Map.Legend = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("parsing project YAML %s: %w", path, err)
	}

	return p, nil
}

// LoadProject loads the project definition from a project directory.
// It looks for roadassets.yaml in the given directory and falls back to
// Default when the file does not exist.
func LoadProject(projectDir string) (*Project, error) {
	path := filepath.Join(projectDir, FileName)
	p, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return p, err
}

// Save writes the project definition as YAML.
func Save(p *Project, path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding project YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding project YAML: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing project file: %w", err)
	}
	return nil
}

// LayerPath resolves a layer's shapefile path against the project directory.
func (p *Project) LayerPath(projectDir string, l LayerDef) string {
	if filepath.IsAbs(l.File) {
		return l.File
	}
	return filepath.Join(projectDir, p.DataDir, l.File)
}
