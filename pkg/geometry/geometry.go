package geometry

// Coord is a single position in [longitude, latitude] order.
//
// This is the GeoJSON axis order used by every geometry in this package.
// All coordinates are WGS-84 decimal degrees.
type Coord [2]float64

// Lon returns the longitude component.
func (c Coord) Lon() float64 { return c[0] }

// Lat returns the latitude component.
func (c Coord) Lat() float64 { return c[1] }

// Kind identifies the concrete type of a Geometry.
type Kind int

const (
	// KindUnknown is never returned by a geometry in this package.
	KindUnknown Kind = iota

	// KindPoint is a single position.
	KindPoint

	// KindLineString is an ordered sequence of two or more positions.
	KindLineString

	// KindPolygon is an exterior ring followed by zero or more holes.
	KindPolygon

	// KindMultiPoint is an ordered set of positions.
	KindMultiPoint

	// KindMultiLineString is an ordered set of line strings.
	KindMultiLineString

	// KindMultiPolygon is an ordered set of polygons.
	KindMultiPolygon

	// KindCollection is a heterogeneous, possibly nested, list of geometries.
	KindCollection
)

// String returns the GeoJSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPoint:
		return "MultiPoint"
	case KindMultiLineString:
		return "MultiLineString"
	case KindMultiPolygon:
		return "MultiPolygon"
	case KindCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Geometry is a node of the wire-format geometry tree.
//
// The set of implementations is closed: only the types declared in this
// package satisfy the interface. Code that switches over a Geometry should
// treat the default branch as an unsupported kind, not as a no-op.
type Geometry interface {
	// Kind returns the concrete kind of the geometry.
	Kind() Kind

	geometry()
}

// Point is a single position.
type Point struct {
	Coordinate Coord
}

// LineString is a connected sequence of positions.
//
// A valid line string has at least two coordinates.
type LineString struct {
	Coordinates []Coord
}

// Polygon is an area bounded by closed rings.
//
// Rings[0] is the exterior boundary and any further rings are holes. Each
// ring's first and last coordinate are equal. Winding order is not enforced
// but is preserved by every conversion.
type Polygon struct {
	Rings [][]Coord
}

// MultiPoint is an ordered set of positions.
type MultiPoint struct {
	Coordinates []Coord
}

// MultiLineString is an ordered set of line strings.
type MultiLineString struct {
	Lines [][]Coord
}

// MultiPolygon is an ordered set of polygons, each given as its rings.
type MultiPolygon struct {
	Polygons [][][]Coord
}

// Collection is an ordered list of geometries of any kind.
//
// Collections may be empty and may contain other collections.
type Collection struct {
	Geometries []Geometry
}

func (*Point) Kind() Kind           { return KindPoint }
func (*LineString) Kind() Kind      { return KindLineString }
func (*Polygon) Kind() Kind         { return KindPolygon }
func (*MultiPoint) Kind() Kind      { return KindMultiPoint }
func (*MultiLineString) Kind() Kind { return KindMultiLineString }
func (*MultiPolygon) Kind() Kind    { return KindMultiPolygon }
func (*Collection) Kind() Kind      { return KindCollection }

func (*Point) geometry()           {}
func (*LineString) geometry()      {}
func (*Polygon) geometry()         {}
func (*MultiPoint) geometry()      {}
func (*MultiLineString) geometry() {}
func (*MultiPolygon) geometry()    {}
func (*Collection) geometry()      {}

// NewPoint returns a point at the given longitude and latitude.
func NewPoint(lon, lat float64) *Point {
	return &Point{Coordinate: Coord{lon, lat}}
}

// IsNil reports whether g is nil or a nil pointer of one of the declared
// kinds.
func IsNil(g Geometry) bool {
	switch v := g.(type) {
	case nil:
		return true
	case *Point:
		return v == nil
	case *LineString:
		return v == nil
	case *Polygon:
		return v == nil
	case *MultiPoint:
		return v == nil
	case *MultiLineString:
		return v == nil
	case *MultiPolygon:
		return v == nil
	case *Collection:
		return v == nil
	}
	return false
}

// kindOf names a geometry for error messages, including nil and foreign values.
func kindOf(g Geometry) string {
	if g == nil {
		return "<nil>"
	}
	if IsNil(g) {
		return "nil " + g.Kind().String()
	}
	return g.Kind().String()
}
