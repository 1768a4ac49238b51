package s100

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/beetlebugorg/seageom/pkg/geometry"
)

// SRSName is the spatial reference every attribute is expressed in.
const SRSName = "EPSG:4326"

// Attribute is an S-100 spatial attribute: a PointProperty, CurveProperty or
// SurfaceProperty.
type Attribute interface {
	// Type returns the S-100 property name, e.g. "pointProperty".
	Type() string
	attribute()
}

// PositionList is a flat sequence of alternating latitude and longitude
// values, the S-100 posList encoding.
type PositionList []float64

// Len returns the number of positions in the list.
func (p PositionList) Len() int { return len(p) / 2 }

// PointProperty is a single position.
type PointProperty struct {
	Pos PositionList `json:"pos" yaml:"pos"`
}

// CurveProperty is an ordered list of line segments.
type CurveProperty struct {
	Segments []PositionList `json:"segments" yaml:"segments"`
}

// SurfaceProperty is an ordered list of polygon patches.
type SurfaceProperty struct {
	Patches []Patch `json:"patches" yaml:"patches"`
}

// Patch is one polygon patch: an exterior boundary and its holes.
type Patch struct {
	Exterior  PositionList   `json:"exterior" yaml:"exterior"`
	Interiors []PositionList `json:"interiors,omitempty" yaml:"interiors,omitempty"`
}

func (*PointProperty) Type() string   { return "pointProperty" }
func (*CurveProperty) Type() string   { return "curveProperty" }
func (*SurfaceProperty) Type() string { return "surfaceProperty" }

func (*PointProperty) attribute()   {}
func (*CurveProperty) attribute()   {}
func (*SurfaceProperty) attribute() {}

// ToPositionList encodes [lon, lat] coordinates as a (lat, lon) list.
func ToPositionList(coords []geom.Coord) PositionList {
	out := make(PositionList, 0, 2*len(coords))
	for _, c := range coords {
		out = append(out, c.Y(), c.X())
	}
	return out
}

// FromPositionList decodes a (lat, lon) list into [lon, lat] coordinates.
func FromPositionList(p PositionList) ([]geom.Coord, error) {
	if len(p)%2 != 0 {
		return nil, &geometry.ErrMalformedGeometry{
			Kind:   geometry.KindUnknown,
			Reason: fmt.Sprintf("position list has odd length %d", len(p)),
		}
	}
	out := make([]geom.Coord, 0, len(p)/2)
	for i := 0; i < len(p); i += 2 {
		out = append(out, geom.Coord{p[i+1], p[i]})
	}
	return out, nil
}
