package engine

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/beetlebugorg/seageom/internal/construct"
	"github.com/beetlebugorg/seageom/pkg/geometry"
)

// CRS identifies a coordinate reference system by its EPSG code.
type CRS int

// WGS84 is EPSG:4326, the only CRS geometry is persisted in.
const WGS84 CRS = 4326

// SRID returns the code stored on engine geometries.
func (c CRS) SRID() int { return int(c) }

// String returns the EPSG name, e.g. "EPSG:4326".
func (c CRS) String() string { return fmt.Sprintf("EPSG:%d", int(c)) }

// ToEngine converts a wire geometry into the engine model.
//
// Every constructed geometry, nested members included, carries crs as its
// SRID. A nil g converts to nil without error. Structural problems such as a
// ring with fewer than four coordinates are reported by the constructors as
// *geometry.ErrMalformedGeometry.
func ToEngine(g geometry.Geometry, crs CRS) (geom.T, error) {
	if g == nil {
		return nil, nil
	}
	return toEngine(g, crs.SRID())
}

func toEngine(g geometry.Geometry, srid int) (geom.T, error) {
	if geometry.IsNil(g) {
		return nil, &geometry.ErrUnsupportedGeometry{Kind: nilKind(g)}
	}
	switch v := g.(type) {
	case *geometry.Point:
		return check(construct.Point(toGeomCoord(v.Coordinate), srid))

	case *geometry.LineString:
		return check(construct.LineString(toGeomCoords(v.Coordinates), srid))

	case *geometry.Polygon:
		return check(construct.Polygon(toGeomRings(v.Rings), srid))

	case *geometry.MultiPoint:
		return check(construct.MultiPoint(toGeomCoords(v.Coordinates), srid))

	case *geometry.MultiLineString:
		lines := make([]*geom.LineString, len(v.Lines))
		for i, coords := range v.Lines {
			ls, err := construct.LineString(toGeomCoords(coords), srid)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i, err)
			}
			lines[i] = ls
		}
		return check(construct.MultiLineString(lines, srid))

	case *geometry.MultiPolygon:
		polys := make([]*geom.Polygon, len(v.Polygons))
		for i, rings := range v.Polygons {
			p, err := construct.Polygon(toGeomRings(rings), srid)
			if err != nil {
				return nil, fmt.Errorf("polygon %d: %w", i, err)
			}
			polys[i] = p
		}
		return check(construct.MultiPolygon(polys, srid))

	case *geometry.Collection:
		members := make([]geom.T, len(v.Geometries))
		for i, member := range v.Geometries {
			m, err := toEngine(member, srid)
			if err != nil {
				return nil, err
			}
			members[i] = m
		}
		return check(construct.Collection(members, srid))

	default:
		return nil, &geometry.ErrUnsupportedGeometry{Kind: fmt.Sprintf("%T", g)}
	}
}

// FromEngine converts an engine geometry back into a wire geometry.
//
// Dispatch is on the exact engine type. A bare *geom.LinearRing is only
// meaningful as a polygon boundary and is rejected along with any other
// type not listed in the engine model, and so is a nil pointer. A nil t
// converts to nil.
func FromEngine(t geom.T) (geometry.Geometry, error) {
	if t == nil {
		return nil, nil
	}
	if isNil(t) {
		return nil, &geometry.ErrUnsupportedGeometry{Kind: nilKind(t)}
	}

	switch v := t.(type) {
	case *geom.Point:
		return &geometry.Point{Coordinate: fromGeomCoord(v.Coords())}, nil

	case *geom.LineString:
		return &geometry.LineString{Coordinates: fromGeomCoords(v.Coords())}, nil

	case *geom.Polygon:
		return &geometry.Polygon{Rings: polygonRings(v)}, nil

	case *geom.MultiPoint:
		coords := make([]geometry.Coord, v.NumPoints())
		for i := range coords {
			coords[i] = fromGeomCoord(v.Point(i).Coords())
		}
		return &geometry.MultiPoint{Coordinates: coords}, nil

	case *geom.MultiLineString:
		lines := make([][]geometry.Coord, v.NumLineStrings())
		for i := range lines {
			lines[i] = fromGeomCoords(v.LineString(i).Coords())
		}
		return &geometry.MultiLineString{Lines: lines}, nil

	case *geom.MultiPolygon:
		polys := make([][][]geometry.Coord, v.NumPolygons())
		for i := range polys {
			polys[i] = polygonRings(v.Polygon(i))
		}
		return &geometry.MultiPolygon{Polygons: polys}, nil

	case *geom.GeometryCollection:
		members := make([]geometry.Geometry, v.NumGeoms())
		for i := range members {
			m, err := FromEngine(v.Geom(i))
			if err != nil {
				return nil, err
			}
			if m == nil {
				return nil, &geometry.ErrUnsupportedGeometry{Kind: "<nil>"}
			}
			members[i] = m
		}
		return &geometry.Collection{Geometries: members}, nil

	default:
		return nil, &geometry.ErrUnsupportedGeometry{Kind: fmt.Sprintf("%T", t)}
	}
}

// check drops the typed result on error so callers never see a non-nil
// interface holding a nil pointer.
func check[G geom.T](g G, err error) (geom.T, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}

// nilKind names a nil or nil pointer value for error messages.
func nilKind(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("nil %T", v)
}

func polygonRings(p *geom.Polygon) [][]geometry.Coord {
	rings := make([][]geometry.Coord, p.NumLinearRings())
	for i := range rings {
		rings[i] = fromGeomCoords(p.LinearRing(i).Coords())
	}
	return rings
}

func toGeomCoord(c geometry.Coord) geom.Coord {
	return geom.Coord{c[0], c[1]}
}

func toGeomCoords(coords []geometry.Coord) []geom.Coord {
	out := make([]geom.Coord, len(coords))
	for i, c := range coords {
		out[i] = toGeomCoord(c)
	}
	return out
}

func toGeomRings(rings [][]geometry.Coord) [][]geom.Coord {
	out := make([][]geom.Coord, len(rings))
	for i, ring := range rings {
		out[i] = toGeomCoords(ring)
	}
	return out
}

// fromGeomCoord keeps X and Y; XY is the only layout built here.
func fromGeomCoord(c geom.Coord) geometry.Coord {
	if len(c) < 2 {
		return geometry.Coord{}
	}
	return geometry.Coord{c[0], c[1]}
}

func fromGeomCoords(coords []geom.Coord) []geometry.Coord {
	out := make([]geometry.Coord, len(coords))
	for i, c := range coords {
		out[i] = fromGeomCoord(c)
	}
	return out
}
