package geometry

import (
	"fmt"
)

// ValidateCoordinate validates a single coordinate pair against the WGS-84
// range.
func ValidateCoordinate(lat, lon float64) error {
	if lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if lon < -180.0 || lon > 180.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return nil
}

// Validate checks the coordinate range and the minimum structure of g.
//
// This is the input validation layer for data arriving from clients. The
// conversions in this module never call it: they preserve whatever they are
// given and leave structural checks to the engine constructors.
func Validate(g Geometry) error {
	if g == nil {
		return &ErrMalformedGeometry{Reason: "geometry is nil"}
	}
	if err := validateStructure(g); err != nil {
		return err
	}

	i := 0
	var rangeErr error
	err := Walk(g, func(c Coord) {
		if rangeErr == nil {
			if err := ValidateCoordinate(c.Lat(), c.Lon()); err != nil {
				rangeErr = fmt.Errorf("coordinate %d: %w", i, err)
			}
		}
		i++
	})
	if err != nil {
		return err
	}
	return rangeErr
}

func validateStructure(g Geometry) error {
	if IsNil(g) {
		return &ErrUnsupportedGeometry{Kind: kindOf(g)}
	}
	switch v := g.(type) {
	case *Point, *MultiPoint:
		return nil
	case *LineString:
		return validateLine(KindLineString, v.Coordinates)
	case *Polygon:
		return validatePolygon(KindPolygon, v.Rings)
	case *MultiLineString:
		for i, line := range v.Lines {
			if err := validateLine(KindMultiLineString, line); err != nil {
				return fmt.Errorf("line %d: %w", i, err)
			}
		}
		return nil
	case *MultiPolygon:
		for i, rings := range v.Polygons {
			if err := validatePolygon(KindMultiPolygon, rings); err != nil {
				return fmt.Errorf("polygon %d: %w", i, err)
			}
		}
		return nil
	case *Collection:
		for i, member := range v.Geometries {
			if err := validateStructure(member); err != nil {
				return fmt.Errorf("member %d: %w", i, err)
			}
		}
		return nil
	default:
		return &ErrUnsupportedGeometry{Kind: kindOf(g)}
	}
}

func validateLine(kind Kind, coords []Coord) error {
	if len(coords) < 2 {
		return &ErrMalformedGeometry{
			Kind:   kind,
			Reason: fmt.Sprintf("line needs at least 2 coordinates, got %d", len(coords)),
		}
	}
	return nil
}

func validatePolygon(kind Kind, rings [][]Coord) error {
	if len(rings) == 0 {
		return &ErrMalformedGeometry{Kind: kind, Reason: "polygon has no exterior ring"}
	}
	for i, ring := range rings {
		if len(ring) < 4 {
			return &ErrMalformedGeometry{
				Kind:   kind,
				Reason: fmt.Sprintf("ring %d needs at least 4 coordinates, got %d", i, len(ring)),
			}
		}
		if ring[0] != ring[len(ring)-1] {
			return &ErrMalformedGeometry{
				Kind:   kind,
				Reason: fmt.Sprintf("ring %d is not closed", i),
			}
		}
	}
	return nil
}
