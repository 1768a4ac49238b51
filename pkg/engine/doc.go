// Package engine bridges wire geometry to the go-geom computational model.
//
// ToEngine and FromEngine convert between geometry.Geometry and geom.T. The
// conversion is lossless for every wire kind:
//
//	t, err := engine.ToEngine(g, engine.WGS84)
//	if err != nil {
//	    return err
//	}
//	back, err := engine.FromEngine(t) // geometry.Equal(g, back)
//
// Every geometry built here carries SRID 4326, nested members included.
//
// # Classification
//
// Code that only needs to know whether an engine geometry is point-like,
// line-like, an area or a container uses Classify and Members instead of
// switching on concrete types.
//
// # Union
//
// Union and UnionAll combine geometries structurally. Empty operands are
// the identity; everything else is flattened into leaf parts and
// reassembled without any clipping.
//
// # Persistence
//
// MarshalEWKB and UnmarshalEWKB produce the SRID-carrying binary form handed
// to storage. MarshalWKT is for logs and debugging.
package engine
