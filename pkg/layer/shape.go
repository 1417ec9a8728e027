package layer

import (
	"errors"
	"fmt"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
)

// ErrUnsupportedShape is returned for shape types with no 2D equivalent
// (MultiPatch).
var ErrUnsupportedShape = errors.New("unsupported shape type")

// toOrb converts a shapefile shape to an orb geometry in source units.
// Z and M values are dropped. A null shape converts to nil.
func toOrb(s shp.Shape) (orb.Geometry, error) {
	switch s := s.(type) {
	case nil, *shp.Null:
		return nil, nil
	case *shp.Point:
		return orb.Point{s.X, s.Y}, nil
	case *shp.PointZ:
		return orb.Point{s.X, s.Y}, nil
	case *shp.PointM:
		return orb.Point{s.X, s.Y}, nil
	case *shp.MultiPoint:
		return multiPoint(s.Points), nil
	case *shp.MultiPointZ:
		return multiPoint(s.Points), nil
	case *shp.MultiPointM:
		return multiPoint(s.Points), nil
	case *shp.PolyLine:
		return lines(s.Parts, s.Points), nil
	case *shp.PolyLineZ:
		return lines(s.Parts, s.Points), nil
	case *shp.PolyLineM:
		return lines(s.Parts, s.Points), nil
	case *shp.Polygon:
		return polygons(s.Parts, s.Points), nil
	case *shp.PolygonZ:
		return polygons(s.Parts, s.Points), nil
	case *shp.PolygonM:
		return polygons(s.Parts, s.Points), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
}

func multiPoint(pts []shp.Point) orb.Geometry {
	if len(pts) == 0 {
		return nil
	}
	mp := make(orb.MultiPoint, len(pts))
	for i, p := range pts {
		mp[i] = orb.Point{p.X, p.Y}
	}
	return mp
}

// split cuts the flat point array into its parts.
func split(parts []int32, pts []shp.Point) [][]orb.Point {
	if len(pts) == 0 {
		return nil
	}
	if len(parts) == 0 {
		parts = []int32{0}
	}
	out := make([][]orb.Point, 0, len(parts))
	for i, start := range parts {
		end := int32(len(pts))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || start >= end || int(end) > len(pts) {
			continue
		}
		part := make([]orb.Point, 0, end-start)
		for _, p := range pts[start:end] {
			part = append(part, orb.Point{p.X, p.Y})
		}
		out = append(out, part)
	}
	return out
}

func lines(parts []int32, pts []shp.Point) orb.Geometry {
	ps := split(parts, pts)
	switch len(ps) {
	case 0:
		return nil
	case 1:
		return orb.LineString(ps[0])
	}
	mls := make(orb.MultiLineString, len(ps))
	for i, p := range ps {
		mls[i] = orb.LineString(p)
	}
	return mls
}

// polygons groups rings into polygons. Shapefile outer rings run clockwise
// and holes counter-clockwise; a hole belongs to the outer ring before it.
// Rings are rewritten in GeoJSON order (outer counter-clockwise).
func polygons(parts []int32, pts []shp.Point) orb.Geometry {
	var mp orb.MultiPolygon
	for _, p := range split(parts, pts) {
		r := orb.Ring(p)
		if !r.Closed() && len(r) > 0 {
			r = append(r, r[0])
		}
		if len(r) < 4 {
			continue
		}
		outer := r.Orientation() == orb.CW
		if outer || len(mp) == 0 {
			if !outer {
				r = reversed(r)
			}
			mp = append(mp, orb.Polygon{reversed(r)})
			continue
		}
		last := len(mp) - 1
		mp[last] = append(mp[last], reversed(r))
	}
	switch len(mp) {
	case 0:
		return nil
	case 1:
		return mp[0]
	}
	return mp
}

func reversed(r orb.Ring) orb.Ring {
	out := make(orb.Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}
