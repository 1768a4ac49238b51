// Package geometry provides the wire-format geometry tree used to exchange
// maritime message geometry with authoring and mapping clients.
//
// A Geometry is one of seven kinds: Point, LineString, Polygon, MultiPoint,
// MultiLineString, MultiPolygon and Collection. Collections nest to any
// depth. Coordinates are [longitude, latitude] pairs in WGS-84 decimal
// degrees, the GeoJSON convention.
//
// # Decoding
//
//	g, err := geometry.Unmarshal([]byte(`{"type":"Point","coordinates":[12.6,55.7]}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Whole documents (FeatureCollection, Feature or bare geometry) decode with
// DecodeFeatures.
//
// # Traversal
//
// Visit reaches every leaf coordinate in document order and may modify it
// in place. Walk is the read-only form and Map builds a modified copy:
//
//	// Round to 5 decimals in place (half to even)
//	err := geometry.Round(g, 5)
//
//	// Produce a [lat, lon] copy for a consumer that wants that order
//	latLon, err := geometry.Swapped(g)
//
// # Errors
//
// ErrUnsupportedGeometry, ErrMalformedGeometry and ErrInvalidCoordinate are
// the error types shared by every package of this module. Match them with
// errors.As.
package geometry
