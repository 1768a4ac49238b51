package engine

import (
	"encoding/binary"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// ewkbByteOrder is the byte order of every payload written by MarshalEWKB.
var ewkbByteOrder = binary.LittleEndian

// ErrSRIDMismatch is returned when an EWKB payload does not carry the
// WGS-84 SRID.
type ErrSRIDMismatch struct {
	Got  int
	Want int
}

func (e *ErrSRIDMismatch) Error() string {
	if e.Got == 0 {
		return fmt.Sprintf("ewkb payload has no SRID, want %d", e.Want)
	}
	return fmt.Sprintf("ewkb payload has SRID %d, want %d", e.Got, e.Want)
}

// MarshalEWKB encodes t as little-endian extended WKB with its SRID embedded.
func MarshalEWKB(t geom.T) ([]byte, error) {
	if isNil(t) {
		return nil, fmt.Errorf("marshal ewkb: nil geometry")
	}
	b, err := ewkb.Marshal(t, ewkbByteOrder)
	if err != nil {
		return nil, fmt.Errorf("marshal ewkb: %w", err)
	}
	return b, nil
}

// UnmarshalEWKB decodes an extended WKB payload. The payload must carry
// SRID 4326.
func UnmarshalEWKB(b []byte) (geom.T, error) {
	t, err := ewkb.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("unmarshal ewkb: %w", err)
	}
	if t.SRID() != WGS84.SRID() {
		return nil, &ErrSRIDMismatch{Got: t.SRID(), Want: WGS84.SRID()}
	}
	return t, nil
}

// MarshalWKT encodes t as well-known text. WKT has no SRID.
func MarshalWKT(t geom.T) (string, error) {
	if isNil(t) {
		return "", fmt.Errorf("marshal wkt: nil geometry")
	}
	s, err := wkt.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("marshal wkt: %w", err)
	}
	return s, nil
}
