package geometry

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// ToGeoJSON converts g into its GeoJSON wire form.
//
// A nil g yields a nil geometry.
func ToGeoJSON(g Geometry) (*geojson.Geometry, error) {
	if g == nil {
		return nil, nil
	}
	if IsNil(g) {
		return nil, &ErrUnsupportedGeometry{Kind: kindOf(g)}
	}

	switch v := g.(type) {
	case *Point:
		return geojson.NewPointGeometry(position(v.Coordinate)), nil
	case *LineString:
		return geojson.NewLineStringGeometry(positions(v.Coordinates)), nil
	case *Polygon:
		return geojson.NewPolygonGeometry(ringPositions(v.Rings)), nil
	case *MultiPoint:
		return geojson.NewMultiPointGeometry(positions(v.Coordinates)...), nil
	case *MultiLineString:
		return geojson.NewMultiLineStringGeometry(ringPositions(v.Lines)...), nil
	case *MultiPolygon:
		polys := make([][][][]float64, len(v.Polygons))
		for i, rings := range v.Polygons {
			polys[i] = ringPositions(rings)
		}
		return geojson.NewMultiPolygonGeometry(polys...), nil
	case *Collection:
		members := make([]*geojson.Geometry, len(v.Geometries))
		for i, member := range v.Geometries {
			if IsNil(member) {
				return nil, &ErrUnsupportedGeometry{Kind: kindOf(member)}
			}
			m, err := ToGeoJSON(member)
			if err != nil {
				return nil, err
			}
			members[i] = m
		}
		return geojson.NewCollectionGeometry(members...), nil
	default:
		return nil, &ErrUnsupportedGeometry{Kind: kindOf(g)}
	}
}

// FromGeoJSON converts a GeoJSON geometry into a Geometry tree.
//
// Positions carrying an altitude keep only longitude and latitude. A position
// with fewer than two values returns *ErrMalformedGeometry.
func FromGeoJSON(gj *geojson.Geometry) (Geometry, error) {
	if gj == nil {
		return nil, nil
	}

	switch gj.Type {
	case geojson.GeometryPoint:
		c, err := coordFrom(KindPoint, gj.Point)
		if err != nil {
			return nil, err
		}
		return &Point{Coordinate: c}, nil
	case geojson.GeometryLineString:
		coords, err := coordsFrom(KindLineString, gj.LineString)
		if err != nil {
			return nil, err
		}
		return &LineString{Coordinates: coords}, nil
	case geojson.GeometryPolygon:
		rings, err := ringsFrom(KindPolygon, gj.Polygon)
		if err != nil {
			return nil, err
		}
		return &Polygon{Rings: rings}, nil
	case geojson.GeometryMultiPoint:
		coords, err := coordsFrom(KindMultiPoint, gj.MultiPoint)
		if err != nil {
			return nil, err
		}
		return &MultiPoint{Coordinates: coords}, nil
	case geojson.GeometryMultiLineString:
		lines, err := ringsFrom(KindMultiLineString, gj.MultiLineString)
		if err != nil {
			return nil, err
		}
		return &MultiLineString{Lines: lines}, nil
	case geojson.GeometryMultiPolygon:
		polys := make([][][]Coord, len(gj.MultiPolygon))
		for i, p := range gj.MultiPolygon {
			rings, err := ringsFrom(KindMultiPolygon, p)
			if err != nil {
				return nil, err
			}
			polys[i] = rings
		}
		return &MultiPolygon{Polygons: polys}, nil
	case geojson.GeometryCollection:
		members := make([]Geometry, len(gj.Geometries))
		for i, member := range gj.Geometries {
			if member == nil {
				return nil, &ErrMalformedGeometry{
					Kind:   KindCollection,
					Reason: fmt.Sprintf("member %d is null", i),
				}
			}
			m, err := FromGeoJSON(member)
			if err != nil {
				return nil, err
			}
			members[i] = m
		}
		return &Collection{Geometries: members}, nil
	default:
		return nil, &ErrUnsupportedGeometry{Kind: string(gj.Type)}
	}
}

// Marshal encodes g as a GeoJSON geometry object.
func Marshal(g Geometry) ([]byte, error) {
	gj, err := ToGeoJSON(g)
	if err != nil {
		return nil, err
	}
	if gj == nil {
		return []byte("null"), nil
	}
	return gj.MarshalJSON()
}

// Unmarshal decodes a GeoJSON geometry object.
func Unmarshal(data []byte) (Geometry, error) {
	gj, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, fmt.Errorf("decode geojson geometry: %w", err)
	}
	return FromGeoJSON(gj)
}

func position(c Coord) []float64 {
	return []float64{c[0], c[1]}
}

func positions(coords []Coord) [][]float64 {
	out := make([][]float64, len(coords))
	for i, c := range coords {
		out[i] = position(c)
	}
	return out
}

func ringPositions(rings [][]Coord) [][][]float64 {
	out := make([][][]float64, len(rings))
	for i, ring := range rings {
		out[i] = positions(ring)
	}
	return out
}

func coordFrom(kind Kind, pos []float64) (Coord, error) {
	if len(pos) < 2 {
		return Coord{}, &ErrMalformedGeometry{
			Kind:   kind,
			Reason: fmt.Sprintf("position must have at least 2 values [lon, lat], got %d", len(pos)),
		}
	}
	return Coord{pos[0], pos[1]}, nil
}

func coordsFrom(kind Kind, pos [][]float64) ([]Coord, error) {
	out := make([]Coord, len(pos))
	for i, p := range pos {
		c, err := coordFrom(kind, p)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func ringsFrom(kind Kind, rings [][][]float64) ([][]Coord, error) {
	out := make([][]Coord, len(rings))
	for i, ring := range rings {
		coords, err := coordsFrom(kind, ring)
		if err != nil {
			return nil, err
		}
		out[i] = coords
	}
	return out, nil
}
