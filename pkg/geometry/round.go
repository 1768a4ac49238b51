package geometry

import (
	"math"
)

// Round rounds every coordinate component of g to the given number of
// decimal digits, in place.
//
// Halves round to even (banker's rounding), so rounding an already rounded
// geometry again leaves it unchanged. Digits past float64 precision leave
// coordinates as they are.
func Round(g Geometry, digits int) error {
	scale := math.Pow10(digits)
	return Visit(g, func(c *Coord) {
		c[0] = roundHalfEven(c[0], scale)
		c[1] = roundHalfEven(c[1], scale)
	})
}

// Rounded returns a copy of g rounded as by Round.
func Rounded(g Geometry, digits int) (Geometry, error) {
	scale := math.Pow10(digits)
	return Map(g, func(c Coord) Coord {
		return Coord{roundHalfEven(c[0], scale), roundHalfEven(c[1], scale)}
	})
}

func roundHalfEven(v, scale float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if scale == 0 {
		return math.Copysign(0, v)
	}
	scaled := v * scale
	// Beyond float64 precision v is already exact.
	if math.IsInf(scale, 0) || math.IsInf(scaled, 0) {
		return v
	}
	return math.RoundToEven(scaled) / scale
}

// Swap exchanges the two components of every coordinate of g, in place.
//
// Use it to move between [lon, lat] and [lat, lon] axis order. Swapping twice
// restores the original geometry.
func Swap(g Geometry) error {
	return Visit(g, func(c *Coord) {
		c[0], c[1] = c[1], c[0]
	})
}

// Swapped returns a copy of g with every coordinate's components exchanged.
func Swapped(g Geometry) (Geometry, error) {
	return Map(g, func(c Coord) Coord {
		return Coord{c[1], c[0]}
	})
}
