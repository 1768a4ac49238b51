package extent

// Epsilon is the tolerance around longitude 0 below which an extent is not
// considered to straddle the prime meridian.
const Epsilon = 0.00001

// Normalize splits e into one to four boxes that each keep longitude within
// [-180, 180] and do not straddle the prime meridian.
//
// A box inside [-180, 180] whose western edge lies east of its eastern edge
// crosses the antimeridian and is read with its eastern edge shifted by 360.
// A western edge below -180 or an eastern edge above 180 is then wrapped
// into two boxes at the antimeridian. Each resulting box that crosses
// longitude 0 by more than Epsilon is then split there. Spatial filters
// treat the returned boxes as OR'd clauses.
//
// Example:
//
//	boxes := extent.Normalize(extent.Extent{MinLat: -10, MinLon: 170, MaxLat: 10, MaxLon: 190})
//	// boxes[0] = {-10 170 10 180}, boxes[1] = {-10 -180 10 -170}
//
// The empty extent is returned as is.
func Normalize(e Extent) []Extent {
	if !e.IsEmpty() && e.MinLon > e.MaxLon && e.MinLon >= -180 && e.MaxLon <= 180 {
		e.MaxLon += 360
	}

	var candidates []Extent
	switch {
	case e.MinLon < -180:
		candidates = []Extent{
			{MinLat: e.MinLat, MinLon: 360 + e.MinLon, MaxLat: e.MaxLat, MaxLon: 180},
			{MinLat: e.MinLat, MinLon: -180, MaxLat: e.MaxLat, MaxLon: e.MaxLon},
		}
	case e.MaxLon > 180:
		candidates = []Extent{
			{MinLat: e.MinLat, MinLon: e.MinLon, MaxLat: e.MaxLat, MaxLon: 180},
			{MinLat: e.MinLat, MinLon: -180, MaxLat: e.MaxLat, MaxLon: e.MaxLon - 360},
		}
	default:
		candidates = []Extent{e}
	}

	out := make([]Extent, 0, 2*len(candidates))
	for _, c := range candidates {
		out = append(out, splitPrimeMeridian(c)...)
	}
	return out
}

func splitPrimeMeridian(e Extent) []Extent {
	if e.MinLon < -Epsilon && e.MaxLon > Epsilon {
		return []Extent{
			{MinLat: e.MinLat, MinLon: e.MinLon, MaxLat: e.MaxLat, MaxLon: 0},
			{MinLat: e.MinLat, MinLon: 0, MaxLat: e.MaxLat, MaxLon: e.MaxLon},
		}
	}
	return []Extent{e}
}

// AnyIntersects reports whether e intersects any of boxes, the OR filter a
// normalized extent stands for.
func AnyIntersects(boxes []Extent, e Extent) bool {
	for _, b := range boxes {
		if b.Intersects(e) {
			return true
		}
	}
	return false
}
