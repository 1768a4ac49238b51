package geometry

// Visit calls fn with a pointer to every leaf coordinate of g, in place.
//
// Coordinates are visited exactly once, depth-first in document order:
// line strings front to back, polygon exterior before holes, multi-geometry
// and collection members in list order. fn may modify the coordinate.
//
// A nil g is a no-op. A nil pointer, a nil member inside a collection, or any
// kind this package does not declare returns *ErrUnsupportedGeometry. Callers must not
// run concurrent mutating visits over the same geometry.
func Visit(g Geometry, fn func(c *Coord)) error {
	if g == nil {
		return nil
	}
	return visit(g, fn)
}

func visit(g Geometry, fn func(c *Coord)) error {
	if IsNil(g) {
		return &ErrUnsupportedGeometry{Kind: kindOf(g)}
	}
	switch v := g.(type) {
	case *Point:
		fn(&v.Coordinate)
	case *LineString:
		visitCoords(v.Coordinates, fn)
	case *Polygon:
		visitRings(v.Rings, fn)
	case *MultiPoint:
		visitCoords(v.Coordinates, fn)
	case *MultiLineString:
		visitRings(v.Lines, fn)
	case *MultiPolygon:
		for _, rings := range v.Polygons {
			visitRings(rings, fn)
		}
	case *Collection:
		for _, member := range v.Geometries {
			if err := visit(member, fn); err != nil {
				return err
			}
		}
	default:
		return &ErrUnsupportedGeometry{Kind: kindOf(g)}
	}
	return nil
}

func visitCoords(coords []Coord, fn func(c *Coord)) {
	for i := range coords {
		fn(&coords[i])
	}
}

func visitRings(rings [][]Coord, fn func(c *Coord)) {
	for _, ring := range rings {
		visitCoords(ring, fn)
	}
}

// Walk calls fn with every leaf coordinate of g without modifying g.
//
// Order and error behaviour match Visit.
func Walk(g Geometry, fn func(c Coord)) error {
	return Visit(g, func(c *Coord) { fn(*c) })
}

// Map returns a copy of g with every coordinate replaced by fn(c).
//
// g itself is left untouched.
func Map(g Geometry, fn func(c Coord) Coord) (Geometry, error) {
	out, err := Clone(g)
	if err != nil {
		return nil, err
	}
	if err := Visit(out, func(c *Coord) { *c = fn(*c) }); err != nil {
		return nil, err
	}
	return out, nil
}

// Coordinates returns every leaf coordinate of g in visiting order.
func Coordinates(g Geometry) ([]Coord, error) {
	var coords []Coord
	if err := Walk(g, func(c Coord) { coords = append(coords, c) }); err != nil {
		return nil, err
	}
	return coords, nil
}
