package engine

import (
	"github.com/twpayne/go-geom"
)

// Category is the structural capability of an engine geometry.
//
// Unlike FromEngine, which needs the exact type, consumers that only care
// whether something is point-like, line-like, area-like or a container of
// other geometries classify with Classify.
type Category int

const (
	// CategoryUnknown is any type outside the engine model.
	CategoryUnknown Category = iota

	// CategoryPoint is a single position.
	CategoryPoint

	// CategoryLine is a line string or a linear ring.
	CategoryLine

	// CategoryArea is a polygon.
	CategoryArea

	// CategoryCollection is a multi-geometry or geometry collection.
	CategoryCollection
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryPoint:
		return "Point"
	case CategoryLine:
		return "Line"
	case CategoryArea:
		return "Area"
	case CategoryCollection:
		return "Collection"
	default:
		return "Unknown"
	}
}

// Classify returns the structural category of t. A nil pointer is
// CategoryUnknown.
func Classify(t geom.T) Category {
	if isNil(t) {
		return CategoryUnknown
	}
	switch t.(type) {
	case *geom.Point:
		return CategoryPoint
	case *geom.LineString, *geom.LinearRing:
		return CategoryLine
	case *geom.Polygon:
		return CategoryArea
	case *geom.MultiPoint, *geom.MultiLineString, *geom.MultiPolygon, *geom.GeometryCollection:
		return CategoryCollection
	default:
		return CategoryUnknown
	}
}

// Members returns the members of a collection-category geometry in index
// order. Multi-geometries yield copies of their points, lines or polygons
// stamped with the parent SRID. Any other geometry has no members and
// yields nil.
func Members(t geom.T) []geom.T {
	if isNil(t) {
		return nil
	}
	switch v := t.(type) {
	case *geom.MultiPoint:
		out := make([]geom.T, v.NumPoints())
		for i := range out {
			out[i] = v.Point(i).Clone().SetSRID(v.SRID())
		}
		return out
	case *geom.MultiLineString:
		out := make([]geom.T, v.NumLineStrings())
		for i := range out {
			out[i] = v.LineString(i).Clone().SetSRID(v.SRID())
		}
		return out
	case *geom.MultiPolygon:
		out := make([]geom.T, v.NumPolygons())
		for i := range out {
			out[i] = v.Polygon(i).Clone().SetSRID(v.SRID())
		}
		return out
	case *geom.GeometryCollection:
		out := make([]geom.T, v.NumGeoms())
		copy(out, v.Geoms())
		return out
	default:
		return nil
	}
}

// IsEmpty reports whether t is nil, a nil pointer, or holds no coordinates
// or members.
func IsEmpty(t geom.T) bool {
	if isNil(t) {
		return true
	}
	switch v := t.(type) {
	case *geom.GeometryCollection:
		return v.NumGeoms() == 0
	default:
		return len(t.FlatCoords()) == 0
	}
}

// isNil reports whether t is nil or a nil pointer of an engine model type.
func isNil(t geom.T) bool {
	switch v := t.(type) {
	case nil:
		return true
	case *geom.Point:
		return v == nil
	case *geom.LineString:
		return v == nil
	case *geom.LinearRing:
		return v == nil
	case *geom.Polygon:
		return v == nil
	case *geom.MultiPoint:
		return v == nil
	case *geom.MultiLineString:
		return v == nil
	case *geom.MultiPolygon:
		return v == nil
	case *geom.GeometryCollection:
		return v == nil
	}
	return false
}
