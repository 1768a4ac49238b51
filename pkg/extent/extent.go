package extent

import (
	"math"

	"github.com/twpayne/go-geom"

	"github.com/beetlebugorg/seageom/pkg/engine"
	"github.com/beetlebugorg/seageom/pkg/geometry"
)

// Extent is a geographic bounding box in WGS-84 decimal degrees.
//
// MinLat <= MaxLat holds for every extent computed from data. MinLon may
// exceed MaxLon, or either may fall outside ±180, in a raw extent taken from
// a map viewport; Normalize resolves those into valid boxes.
type Extent struct {
	MinLat float64 `json:"minLat" yaml:"minLat"` // Southern edge
	MinLon float64 `json:"minLon" yaml:"minLon"` // Western edge
	MaxLat float64 `json:"maxLat" yaml:"maxLat"` // Northern edge
	MaxLon float64 `json:"maxLon" yaml:"maxLon"` // Eastern edge
}

// Empty is the extent of no data. Every min sits above every plausible max
// so that folding a point into it yields that point's extent.
var Empty = Extent{MinLat: 90, MinLon: 180, MaxLat: -90, MaxLon: -180}

// LatLon is a single position in (lat, lon) order.
type LatLon struct {
	Lat float64
	Lon float64
}

// IsEmpty reports whether e holds no data.
//
// Only an inverted latitude range means empty. A sentinel-valued extent
// must not be read as a zero-area box at the pole.
func (e Extent) IsEmpty() bool {
	return e.MinLat > e.MaxLat
}

// Contains returns true if the point (lat, lon) is within the extent.
func (e Extent) Contains(lat, lon float64) bool {
	return lon >= e.MinLon && lon <= e.MaxLon &&
		lat >= e.MinLat && lat <= e.MaxLat
}

// Intersects returns true if other overlaps e. Touching edges intersect.
func (e Extent) Intersects(other Extent) bool {
	if e.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !(other.MaxLon < e.MinLon ||
		other.MinLon > e.MaxLon ||
		other.MaxLat < e.MinLat ||
		other.MinLat > e.MaxLat)
}

// Expand returns a new Extent grown by margin degrees in all directions.
//
// Latitude is clamped to ±90. Longitude is left unclamped so that
// expansion past the antimeridian survives into Normalize.
func (e Extent) Expand(margin float64) Extent {
	if e.IsEmpty() {
		return e
	}
	return Extent{
		MinLat: math.Max(e.MinLat-margin, -90),
		MinLon: e.MinLon - margin,
		MaxLat: math.Min(e.MaxLat+margin, 90),
		MaxLon: e.MaxLon + margin,
	}
}

// Union returns the smallest extent covering both e and other.
func (e Extent) Union(other Extent) Extent {
	return Extent{
		MinLat: math.Min(e.MinLat, other.MinLat),
		MinLon: math.Min(e.MinLon, other.MinLon),
		MaxLat: math.Max(e.MaxLat, other.MaxLat),
		MaxLon: math.Max(e.MaxLon, other.MaxLon),
	}
}

// add folds one position into e.
func (e Extent) add(lat, lon float64) Extent {
	if lat < e.MinLat {
		e.MinLat = lat
	}
	if lat > e.MaxLat {
		e.MaxLat = lat
	}
	if lon < e.MinLon {
		e.MinLon = lon
	}
	if lon > e.MaxLon {
		e.MaxLon = lon
	}
	return e
}

// BoundsOf returns the extent of points. No points yields Empty.
func BoundsOf(points []LatLon) Extent {
	e := Empty
	for _, p := range points {
		e = e.add(p.Lat, p.Lon)
	}
	return e
}

// Of returns the extent of every coordinate in g. A nil g or a geometry
// without coordinates yields Empty.
func Of(g geometry.Geometry) (Extent, error) {
	e := Empty
	err := geometry.Walk(g, func(c geometry.Coord) {
		e = e.add(c.Lat(), c.Lon())
	})
	if err != nil {
		return Empty, err
	}
	return e, nil
}

// OfAll returns the extent covering every geometry in gs.
func OfAll(gs ...geometry.Geometry) (Extent, error) {
	e := Empty
	for _, g := range gs {
		ge, err := Of(g)
		if err != nil {
			return Empty, err
		}
		e = e.Union(ge)
	}
	return e, nil
}

// OfEngine returns the extent of an engine geometry. Collections are folded
// member by member.
func OfEngine(t geom.T) Extent {
	if engine.IsEmpty(t) {
		return Empty
	}
	if _, ok := t.(*geom.GeometryCollection); ok {
		e := Empty
		for _, member := range engine.Members(t) {
			e = e.Union(OfEngine(member))
		}
		return e
	}

	b := t.Bounds()
	if b == nil || b.Layout().Stride() < 2 || b.IsEmpty() {
		return Empty
	}
	return Extent{
		MinLat: b.Min(1),
		MinLon: b.Min(0),
		MaxLat: b.Max(1),
		MaxLon: b.Max(0),
	}
}
