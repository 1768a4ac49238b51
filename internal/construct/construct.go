// Package construct builds engine-model geometries.
//
// Every constructor stamps the SRID it is given and rejects structure the
// engine cannot represent, returning *geometry.ErrMalformedGeometry. Callers
// do not pre-validate; the checks here are the only ones.
package construct

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/beetlebugorg/seageom/pkg/geometry"
)

// Point builds a point from a single [lon, lat] coordinate.
func Point(c geom.Coord, srid int) (*geom.Point, error) {
	p, err := geom.NewPoint(geom.XY).SetCoords(c)
	if err != nil {
		return nil, malformed(geometry.KindPoint, err.Error())
	}
	return p.SetSRID(srid), nil
}

// LineString builds a line from two or more coordinates.
func LineString(coords []geom.Coord, srid int) (*geom.LineString, error) {
	if len(coords) < 2 {
		return nil, malformed(geometry.KindLineString,
			fmt.Sprintf("line needs at least 2 coordinates, got %d", len(coords)))
	}
	ls, err := geom.NewLineString(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, malformed(geometry.KindLineString, err.Error())
	}
	return ls.SetSRID(srid), nil
}

// LinearRing builds a closed ring of at least four coordinates.
//
// Rings carry no SRID of their own; the polygon they bound does.
func LinearRing(coords []geom.Coord) (*geom.LinearRing, error) {
	if len(coords) < 4 {
		return nil, malformed(geometry.KindPolygon,
			fmt.Sprintf("ring needs at least 4 coordinates, got %d", len(coords)))
	}
	first, last := coords[0], coords[len(coords)-1]
	if first[0] != last[0] || first[1] != last[1] {
		return nil, malformed(geometry.KindPolygon, "ring is not closed")
	}
	lr, err := geom.NewLinearRing(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, malformed(geometry.KindPolygon, err.Error())
	}
	return lr, nil
}

// Polygon builds a polygon from its exterior ring followed by its holes.
func Polygon(rings [][]geom.Coord, srid int) (*geom.Polygon, error) {
	if len(rings) == 0 {
		return nil, malformed(geometry.KindPolygon, "polygon has no exterior ring")
	}
	p := geom.NewPolygon(geom.XY)
	for i, coords := range rings {
		lr, err := LinearRing(coords)
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		if err := p.Push(lr); err != nil {
			return nil, malformed(geometry.KindPolygon, err.Error())
		}
	}
	return p.SetSRID(srid), nil
}

// MultiPoint builds a multi-point from coordinates in order.
func MultiPoint(coords []geom.Coord, srid int) (*geom.MultiPoint, error) {
	mp, err := geom.NewMultiPoint(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, malformed(geometry.KindMultiPoint, err.Error())
	}
	return mp.SetSRID(srid), nil
}

// MultiLineString builds a multi-line from already constructed lines.
func MultiLineString(lines []*geom.LineString, srid int) (*geom.MultiLineString, error) {
	mls := geom.NewMultiLineString(geom.XY)
	for _, ls := range lines {
		if err := mls.Push(ls); err != nil {
			return nil, malformed(geometry.KindMultiLineString, err.Error())
		}
	}
	return mls.SetSRID(srid), nil
}

// MultiPolygon builds a multi-polygon from already constructed polygons.
func MultiPolygon(polys []*geom.Polygon, srid int) (*geom.MultiPolygon, error) {
	mp := geom.NewMultiPolygon(geom.XY)
	for _, p := range polys {
		if err := mp.Push(p); err != nil {
			return nil, malformed(geometry.KindMultiPolygon, err.Error())
		}
	}
	return mp.SetSRID(srid), nil
}

// Collection builds a geometry collection holding members in order.
func Collection(members []geom.T, srid int) (*geom.GeometryCollection, error) {
	gc := geom.NewGeometryCollection()
	if len(members) > 0 {
		if err := gc.Push(members...); err != nil {
			return nil, malformed(geometry.KindCollection, err.Error())
		}
	}
	return gc.SetSRID(srid), nil
}

func malformed(kind geometry.Kind, reason string) error {
	return &geometry.ErrMalformedGeometry{Kind: kind, Reason: reason}
}
