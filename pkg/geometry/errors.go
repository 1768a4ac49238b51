package geometry

import (
	"fmt"
)

// ErrUnsupportedGeometry indicates a geometry kind or engine type that a
// conversion does not handle.
type ErrUnsupportedGeometry struct {
	Kind string
}

func (e *ErrUnsupportedGeometry) Error() string {
	return fmt.Sprintf("unsupported geometry kind: %s", e.Kind)
}

// ErrMalformedGeometry indicates a structural violation, such as a line with
// fewer than two positions or a ring that is not closed.
type ErrMalformedGeometry struct {
	Kind   Kind
	Reason string
}

func (e *ErrMalformedGeometry) Error() string {
	if e.Kind != KindUnknown {
		return fmt.Sprintf("malformed geometry (%v): %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("malformed geometry: %s", e.Reason)
}

// ErrInvalidCoordinate indicates a coordinate outside the WGS-84 range.
//
// Conversions never return it; only the validation functions do.
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.Lat, e.Lon)
}
