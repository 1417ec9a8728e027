// Package geo holds the geometry helpers shared by the loader and the map:
// reprojection, bounds checks and label anchors, built on orb.
package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"

	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

// IsEmpty reports whether g carries no coordinates.
func IsEmpty(g orb.Geometry) bool {
	if g == nil {
		return true
	}
	switch g := g.(type) {
	case orb.Point:
		return false
	case orb.MultiPoint:
		return len(g) == 0
	case orb.LineString:
		return len(g) == 0
	case orb.MultiLineString:
		for _, ls := range g {
			if len(ls) > 0 {
				return false
			}
		}
		return true
	case orb.Ring:
		return len(g) == 0
	case orb.Polygon:
		return len(g) == 0 || len(g[0]) == 0
	case orb.MultiPolygon:
		for _, p := range g {
			if len(p) > 0 && len(p[0]) > 0 {
				return false
			}
		}
		return true
	case orb.Collection:
		for _, c := range g {
			if !IsEmpty(c) {
				return false
			}
		}
		return true
	}
	return false
}

// AnchorOf returns the label position for g. Points anchor on themselves
// unless the rule asks for a centroid; every other geometry uses its planar
// centroid. ok is false for empty geometries.
func AnchorOf(g orb.Geometry, rule spec.AnchorRule) (p orb.Point, ok bool) {
	if IsEmpty(g) {
		return orb.Point{}, false
	}
	if pt, isPoint := g.(orb.Point); isPoint && rule != spec.AnchorCentroid {
		return pt, true
	}
	c, _ := planar.CentroidArea(g)
	return c, true
}

// Reproject returns a copy of g with every coordinate passed through proj.
// The input geometry is left untouched.
func Reproject(g orb.Geometry, proj orb.Projection) orb.Geometry {
	if g == nil {
		return nil
	}
	return project.Geometry(orb.Clone(g), proj)
}

// InLonLatBounds reports whether every coordinate of g is a valid
// longitude/latitude pair.
func InLonLatBounds(g orb.Geometry) bool {
	if IsEmpty(g) {
		return true
	}
	b := g.Bound()
	return b.Min.X() >= -180 && b.Max.X() <= 180 &&
		b.Min.Y() >= -90 && b.Max.Y() <= 90
}

// Describe returns a short human-readable geometry type for diagnostics.
func Describe(g orb.Geometry) string {
	if g == nil {
		return "empty"
	}
	return g.GeoJSONType()
}
