// Package export writes the tabular outputs: the lighting-column attribute
// CSV and the savings workbook.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/RoyCoates/EGM722Project/pkg/layer"
)

// WriteCSV writes the attributes of lyr to path: a header row in DBF field
// order, then one row per feature. Geometry is not exported and null
// values are written as empty cells.
func WriteCSV(path string, lyr *layer.Layer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(lyr.Fields); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	row := make([]string, len(lyr.Fields))
	for _, feat := range lyr.Features {
		for i, name := range lyr.Fields {
			row[i], _ = feat.Value(name)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
