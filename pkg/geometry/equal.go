package geometry

// Clone returns a deep copy of g that shares no memory with it.
//
// A nil g clones to nil.
func Clone(g Geometry) (Geometry, error) {
	if g == nil {
		return nil, nil
	}
	return clone(g)
}

func clone(g Geometry) (Geometry, error) {
	if IsNil(g) {
		return nil, &ErrUnsupportedGeometry{Kind: kindOf(g)}
	}
	switch v := g.(type) {
	case *Point:
		return &Point{Coordinate: v.Coordinate}, nil
	case *LineString:
		return &LineString{Coordinates: cloneCoords(v.Coordinates)}, nil
	case *Polygon:
		return &Polygon{Rings: cloneRings(v.Rings)}, nil
	case *MultiPoint:
		return &MultiPoint{Coordinates: cloneCoords(v.Coordinates)}, nil
	case *MultiLineString:
		return &MultiLineString{Lines: cloneRings(v.Lines)}, nil
	case *MultiPolygon:
		polys := make([][][]Coord, len(v.Polygons))
		for i, rings := range v.Polygons {
			polys[i] = cloneRings(rings)
		}
		return &MultiPolygon{Polygons: polys}, nil
	case *Collection:
		members := make([]Geometry, len(v.Geometries))
		for i, member := range v.Geometries {
			c, err := clone(member)
			if err != nil {
				return nil, err
			}
			members[i] = c
		}
		return &Collection{Geometries: members}, nil
	default:
		return nil, &ErrUnsupportedGeometry{Kind: kindOf(g)}
	}
}

func cloneCoords(coords []Coord) []Coord {
	out := make([]Coord, len(coords))
	copy(out, coords)
	return out
}

func cloneRings(rings [][]Coord) [][]Coord {
	out := make([][]Coord, len(rings))
	for i, ring := range rings {
		out[i] = cloneCoords(ring)
	}
	return out
}

// Equal reports whether a and b have the same kinds, the same nesting and
// equal coordinates in the same order.
//
// Nil and empty slices compare equal, so a geometry equals its round-trip
// through any bridge in this module. A nil pointer equals nil.
func Equal(a, b Geometry) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case *Point:
		return av.Coordinate == b.(*Point).Coordinate
	case *LineString:
		return equalCoords(av.Coordinates, b.(*LineString).Coordinates)
	case *Polygon:
		return equalRings(av.Rings, b.(*Polygon).Rings)
	case *MultiPoint:
		return equalCoords(av.Coordinates, b.(*MultiPoint).Coordinates)
	case *MultiLineString:
		return equalRings(av.Lines, b.(*MultiLineString).Lines)
	case *MultiPolygon:
		bp := b.(*MultiPolygon).Polygons
		if len(av.Polygons) != len(bp) {
			return false
		}
		for i := range av.Polygons {
			if !equalRings(av.Polygons[i], bp[i]) {
				return false
			}
		}
		return true
	case *Collection:
		bg := b.(*Collection).Geometries
		if len(av.Geometries) != len(bg) {
			return false
		}
		for i := range av.Geometries {
			if !Equal(av.Geometries[i], bg[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalCoords(a, b []Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalRings(a, b [][]Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalCoords(a[i], b[i]) {
			return false
		}
	}
	return true
}
