// Package shptest writes small shapefiles for tests.
package shptest

import (
	"os"
	"strings"
	"testing"

	shp "github.com/jonas-p/go-shp"
)

// Write creates path (a .shp) with string attributes, one row per shape.
// go-shp names the attribute table "<base>dbf"; Write moves it to
// "<base>.dbf" so readers find it.
func Write(t testing.TB, path string, typ shp.ShapeType, fields []string, shapes []shp.Shape, rows [][]string) string {
	t.Helper()
	w, err := shp.Create(path, typ)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	fs := make([]shp.Field, len(fields))
	for i, f := range fields {
		fs[i] = shp.StringField(f, 32)
	}
	if err := w.SetFields(fs); err != nil {
		t.Fatalf("setting fields: %v", err)
	}
	for i, s := range shapes {
		n := w.Write(s)
		for j, v := range rows[i] {
			if err := w.WriteAttribute(int(n), j, v); err != nil {
				t.Fatalf("writing attribute: %v", err)
			}
		}
	}
	w.Close()

	base := strings.TrimSuffix(path, ".shp")
	if _, err := os.Stat(base + "dbf"); err == nil {
		if err := os.Rename(base+"dbf", base+".dbf"); err != nil {
			t.Fatalf("renaming attribute table: %v", err)
		}
	}
	return path
}
