package s100

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/beetlebugorg/seageom/internal/construct"
	"github.com/beetlebugorg/seageom/pkg/engine"
	"github.com/beetlebugorg/seageom/pkg/geometry"
)

// ToAttributes encodes an engine geometry as S-100 spatial attributes.
//
// A point becomes one PointProperty, a line one CurveProperty with a single
// segment, and a polygon one SurfaceProperty with a single patch. Collections
// and multi-geometries are flattened: each member contributes its own
// attributes in index order, and an empty collection contributes none.
// Coordinates are swapped into (lat, lon) order.
//
// A nil t yields no attributes.
func ToAttributes(t geom.T) ([]Attribute, error) {
	if t == nil {
		return nil, nil
	}
	var out []Attribute
	if err := appendAttributes(&out, t); err != nil {
		return nil, err
	}
	return out, nil
}

func appendAttributes(out *[]Attribute, t geom.T) error {
	switch engine.Classify(t) {
	case engine.CategoryPoint:
		p := t.(*geom.Point)
		*out = append(*out, &PointProperty{Pos: ToPositionList([]geom.Coord{p.Coords()})})

	case engine.CategoryLine:
		line, ok := t.(interface{ Coords() []geom.Coord })
		if !ok {
			return &geometry.ErrUnsupportedGeometry{Kind: fmt.Sprintf("%T", t)}
		}
		*out = append(*out, &CurveProperty{
			Segments: []PositionList{ToPositionList(line.Coords())},
		})

	case engine.CategoryArea:
		*out = append(*out, &SurfaceProperty{Patches: []Patch{toPatch(t.(*geom.Polygon))}})

	case engine.CategoryCollection:
		for i, member := range engine.Members(t) {
			if member == nil {
				return &geometry.ErrUnsupportedGeometry{Kind: "<nil>"}
			}
			if err := appendAttributes(out, member); err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
		}

	default:
		return &geometry.ErrUnsupportedGeometry{Kind: fmt.Sprintf("%T", t)}
	}
	return nil
}

func toPatch(p *geom.Polygon) Patch {
	var patch Patch
	for i := 0; i < p.NumLinearRings(); i++ {
		ring := ToPositionList(p.LinearRing(i).Coords())
		if i == 0 {
			patch.Exterior = ring
			continue
		}
		patch.Interiors = append(patch.Interiors, ring)
	}
	return patch
}

// AttributesOf converts a wire geometry to the engine model and encodes it
// with ToAttributes.
func AttributesOf(g geometry.Geometry) ([]Attribute, error) {
	t, err := engine.ToEngine(g, engine.WGS84)
	if err != nil {
		return nil, err
	}
	return ToAttributes(t)
}

// FromAttributes decodes S-100 spatial attributes into one engine geometry.
//
// Each attribute decodes on its own: a PointProperty to a point, a
// CurveProperty to its segment line or, with several segments, a collection
// of them, and a SurfaceProperty likewise to polygons. A segment or patch
// exterior holding a single position decodes to a point. The decoded parts
// are then unioned from left to right starting from the empty geometry.
//
// The result is not the input of ToAttributes: a MultiLineString encodes to
// several CurveProperty values and decodes back as a MultiLineString, but a
// collection mixing kinds loses its nesting.
func FromAttributes(attrs []Attribute) (geom.T, error) {
	srid := engine.WGS84.SRID()
	parts := make([]geom.T, 0, len(attrs))
	for i, attr := range attrs {
		part, err := fromAttribute(attr, srid)
		if err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i, err)
		}
		parts = append(parts, part)
	}

	gc, err := construct.Collection(parts, srid)
	if err != nil {
		return nil, err
	}
	return engine.UnionAll(engine.Members(gc))
}

func fromAttribute(attr Attribute, srid int) (geom.T, error) {
	switch a := attr.(type) {
	case nil:
		return nil, &geometry.ErrUnsupportedGeometry{Kind: "<nil>"}
	case *PointProperty:
		if a == nil {
			return nil, &geometry.ErrUnsupportedGeometry{Kind: "nil *s100.PointProperty"}
		}
		coords, err := FromPositionList(a.Pos)
		if err != nil {
			return nil, err
		}
		if len(coords) != 1 {
			return nil, &geometry.ErrMalformedGeometry{
				Kind:   geometry.KindPoint,
				Reason: fmt.Sprintf("point needs exactly 1 position, got %d", len(coords)),
			}
		}
		return check(construct.Point(coords[0], srid))

	case *CurveProperty:
		if a == nil {
			return nil, &geometry.ErrUnsupportedGeometry{Kind: "nil *s100.CurveProperty"}
		}
		if len(a.Segments) == 0 {
			return nil, &geometry.ErrMalformedGeometry{Kind: geometry.KindLineString, Reason: "curve has no segments"}
		}
		segments := make([]geom.T, len(a.Segments))
		for i, seg := range a.Segments {
			s, err := fromSegment(seg, srid)
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			segments[i] = s
		}
		return single(segments, srid)

	case *SurfaceProperty:
		if a == nil {
			return nil, &geometry.ErrUnsupportedGeometry{Kind: "nil *s100.SurfaceProperty"}
		}
		if len(a.Patches) == 0 {
			return nil, &geometry.ErrMalformedGeometry{Kind: geometry.KindPolygon, Reason: "surface has no patches"}
		}
		patches := make([]geom.T, len(a.Patches))
		for i, patch := range a.Patches {
			p, err := fromPatch(patch, srid)
			if err != nil {
				return nil, fmt.Errorf("patch %d: %w", i, err)
			}
			patches[i] = p
		}
		return single(patches, srid)

	default:
		return nil, &geometry.ErrUnsupportedGeometry{Kind: fmt.Sprintf("%T", attr)}
	}
}

func fromSegment(seg PositionList, srid int) (geom.T, error) {
	coords, err := FromPositionList(seg)
	if err != nil {
		return nil, err
	}
	if len(coords) == 1 {
		return check(construct.Point(coords[0], srid))
	}
	return check(construct.LineString(coords, srid))
}

func fromPatch(patch Patch, srid int) (geom.T, error) {
	exterior, err := FromPositionList(patch.Exterior)
	if err != nil {
		return nil, fmt.Errorf("exterior: %w", err)
	}
	if len(exterior) == 1 {
		return check(construct.Point(exterior[0], srid))
	}

	rings := make([][]geom.Coord, 0, 1+len(patch.Interiors))
	rings = append(rings, exterior)
	for i, interior := range patch.Interiors {
		coords, err := FromPositionList(interior)
		if err != nil {
			return nil, fmt.Errorf("interior %d: %w", i, err)
		}
		rings = append(rings, coords)
	}
	return check(construct.Polygon(rings, srid))
}

// single returns the only part, or a collection of all of them.
func single(parts []geom.T, srid int) (geom.T, error) {
	if len(parts) == 1 {
		return parts[0], nil
	}
	return check(construct.Collection(parts, srid))
}

// GeometryOf decodes attributes with FromAttributes and converts the result
// to a wire geometry.
func GeometryOf(attrs []Attribute) (geometry.Geometry, error) {
	t, err := FromAttributes(attrs)
	if err != nil {
		return nil, err
	}
	return engine.FromEngine(t)
}

func check[G geom.T](g G, err error) (geom.T, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}
