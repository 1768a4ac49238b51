package engine

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/beetlebugorg/seageom/internal/construct"
	"github.com/beetlebugorg/seageom/pkg/geometry"
)

// Empty returns the empty engine geometry: a WGS-84 collection with no
// members. It is the identity of Union.
func Empty() geom.T {
	return geom.NewGeometryCollection().SetSRID(WGS84.SRID())
}

// Union combines a and b into one geometry.
//
// If either operand is empty (see IsEmpty) the result is a copy of the other
// operand, unchanged. Otherwise both operands are flattened into their leaf
// points, lines and polygons, in order, and reassembled: a single leaf is
// returned as itself, leaves of one category become the matching
// multi-geometry, and mixed leaves become a geometry collection.
//
// The union is structural. Overlapping areas are not dissolved and duplicate
// leaves are kept.
func Union(a, b geom.T) (geom.T, error) {
	switch {
	case IsEmpty(a) && IsEmpty(b):
		if b != nil {
			return clone(b)
		}
		if a != nil {
			return clone(a)
		}
		return Empty(), nil
	case IsEmpty(a):
		return clone(b)
	case IsEmpty(b):
		return clone(a)
	}

	var leaves []geom.T
	if err := explode(a, &leaves); err != nil {
		return nil, err
	}
	if err := explode(b, &leaves); err != nil {
		return nil, err
	}
	return assemble(leaves)
}

// UnionAll unions ts pairwise from left to right, starting from Empty.
func UnionAll(ts []geom.T) (geom.T, error) {
	acc := Empty()
	for i, t := range ts {
		u, err := Union(acc, t)
		if err != nil {
			return nil, fmt.Errorf("union member %d: %w", i, err)
		}
		acc = u
	}
	return acc, nil
}

// explode appends copies of the leaf geometries of t to leaves.
func explode(t geom.T, leaves *[]geom.T) error {
	if IsEmpty(t) {
		return nil
	}
	switch v := t.(type) {
	case *geom.Point:
		*leaves = append(*leaves, v.Clone())
	case *geom.LineString:
		*leaves = append(*leaves, v.Clone())
	case *geom.LinearRing:
		ls, err := construct.LineString(v.Coords(), WGS84.SRID())
		if err != nil {
			return err
		}
		*leaves = append(*leaves, ls)
	case *geom.Polygon:
		*leaves = append(*leaves, v.Clone())
	case *geom.MultiPoint, *geom.MultiLineString, *geom.MultiPolygon, *geom.GeometryCollection:
		for _, member := range Members(v) {
			if err := explode(member, leaves); err != nil {
				return err
			}
		}
	default:
		return &geometry.ErrUnsupportedGeometry{Kind: fmt.Sprintf("%T", t)}
	}
	return nil
}

func assemble(leaves []geom.T) (geom.T, error) {
	srid := WGS84.SRID()
	switch len(leaves) {
	case 0:
		return Empty(), nil
	case 1:
		return stamp(leaves[0], srid), nil
	}

	points := make([]geom.Coord, 0, len(leaves))
	lines := make([]*geom.LineString, 0, len(leaves))
	polys := make([]*geom.Polygon, 0, len(leaves))
	for _, leaf := range leaves {
		switch v := leaf.(type) {
		case *geom.Point:
			points = append(points, v.Coords())
		case *geom.LineString:
			lines = append(lines, v)
		case *geom.Polygon:
			polys = append(polys, v)
		}
	}

	switch len(leaves) {
	case len(points):
		return check(construct.MultiPoint(points, srid))
	case len(lines):
		return check(construct.MultiLineString(lines, srid))
	case len(polys):
		return check(construct.MultiPolygon(polys, srid))
	}

	members := make([]geom.T, len(leaves))
	for i, leaf := range leaves {
		members[i] = stamp(leaf, srid)
	}
	return check(construct.Collection(members, srid))
}

// clone returns a deep copy of t with its SRID intact.
func clone(t geom.T) (geom.T, error) {
	if isNil(t) {
		return nil, &geometry.ErrUnsupportedGeometry{Kind: nilKind(t)}
	}
	switch v := t.(type) {
	case *geom.Point:
		return v.Clone(), nil
	case *geom.LineString:
		return v.Clone(), nil
	case *geom.LinearRing:
		return v.Clone(), nil
	case *geom.Polygon:
		return v.Clone(), nil
	case *geom.MultiPoint:
		return v.Clone(), nil
	case *geom.MultiLineString:
		return v.Clone(), nil
	case *geom.MultiPolygon:
		return v.Clone(), nil
	case *geom.GeometryCollection:
		members := make([]geom.T, v.NumGeoms())
		for i, member := range v.Geoms() {
			m, err := clone(member)
			if err != nil {
				return nil, err
			}
			members[i] = m
		}
		return check(construct.Collection(members, v.SRID()))
	default:
		return nil, &geometry.ErrUnsupportedGeometry{Kind: fmt.Sprintf("%T", t)}
	}
}

func stamp(t geom.T, srid int) geom.T {
	switch v := t.(type) {
	case *geom.Point:
		return v.SetSRID(srid)
	case *geom.LineString:
		return v.SetSRID(srid)
	case *geom.Polygon:
		return v.SetSRID(srid)
	}
	return t
}
