// Package s100 encodes geometry as IHO S-100 spatial attributes.
//
// S-100 products such as S-124 navigational warnings carry geometry as a
// list of point, curve and surface properties rather than a geometry tree.
// Each property holds flat position lists in (lat, lon) order; the bridge
// swaps axes in both directions.
//
//	attrs, err := s100.AttributesOf(g)
//	...
//	t, err := s100.FromAttributes(attrs)
//
// Encoding flattens collections, so decoding does not reproduce the input
// tree. Only the attribute values are produced here; the GML document
// around them belongs to the caller.
package s100
