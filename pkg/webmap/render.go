package webmap

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
)

//go:embed templates/map.html.tmpl
var pageTemplate string

var page = template.Must(template.New("map").Parse(pageTemplate))

// Render writes the map page to w.
func Render(w io.Writer, m *Map) error {
	if err := page.Execute(w, m); err != nil {
		return fmt.Errorf("rendering map: %w", err)
	}
	return nil
}

// WriteFile renders the map to path, replacing any existing file.
func WriteFile(path string, m *Map) error {
	var buf bytes.Buffer
	if err := Render(&buf, m); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing map %s: %w", path, err)
	}
	return nil
}
