// Package extent computes geographic bounding boxes and splits them into
// boxes a rectangular spatial filter can evaluate.
//
// # Computing extents
//
//	e := extent.BoundsOf([]extent.LatLon{{Lat: 55.6, Lon: 12.5}, {Lat: 55.8, Lon: 12.7}})
//	e, err := extent.Of(g) // every coordinate of a geometry tree
//
// An extent of no data is the Empty sentinel, whose minimums lie above its
// maximums. Check IsEmpty before using an extent as a filter.
//
// # Normalizing
//
// Viewport extents taken from a map may run past ±180 or straddle the prime
// meridian. Normalize returns one to four boxes that do neither:
//
//	for _, box := range extent.Normalize(viewport) {
//	    // OR one filter clause per box
//	}
//
// Index applies the same splitting to both stored extents and queries.
package extent
