// Package layer reads road-asset shapefiles into memory as WGS84 features.
package layer

import (
	"strings"

	"github.com/paulmach/orb"

	"github.com/RoyCoates/EGM722Project/pkg/geo"
)

// Feature is one shapefile record: a geometry in lon/lat degrees plus its
// DBF attributes as trimmed strings.
type Feature struct {
	Index      int
	Geometry   orb.Geometry
	Properties map[string]string
}

// Value returns the attribute for field. ok is false when the field is
// missing or null (blank, or a numeric null filled with '*').
func (f Feature) Value(field string) (v string, ok bool) {
	v, present := f.Properties[field]
	if !present || isNull(v) {
		return "", false
	}
	return v, true
}

// IsEmpty reports whether the feature has no geometry.
func (f Feature) IsEmpty() bool {
	return geo.IsEmpty(f.Geometry)
}

func isNull(v string) bool {
	return strings.Trim(v, "* ") == ""
}

// Layer is a named set of features loaded from one shapefile.
type Layer struct {
	Name string
	Path string
	// CRS names the source reference system the features were converted from.
	CRS      string
	Fields   []string
	Features []Feature
	Bound    orb.Bound
}

// HasField reports whether the layer's DBF declares the field.
func (l *Layer) HasField(name string) bool {
	for _, f := range l.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// NonEmpty returns the features that carry geometry, in file order.
func (l *Layer) NonEmpty() []Feature {
	out := make([]Feature, 0, len(l.Features))
	for _, f := range l.Features {
		if !f.IsEmpty() {
			out = append(out, f)
		}
	}
	return out
}

// Set holds the loaded layers in project draw order.
type Set struct {
	Layers []*Layer
}

// Get returns the layer with the given name, or nil.
func (s *Set) Get(name string) *Layer {
	for _, l := range s.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

func bound(features []Feature) orb.Bound {
	var b orb.Bound
	first := true
	for _, f := range features {
		if f.IsEmpty() {
			continue
		}
		fb := f.Geometry.Bound()
		if first {
			b = fb
			first = false
			continue
		}
		b = b.Union(fb)
	}
	return b
}
