package geometry

import (
	"encoding/json"
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// Feature is a geometry with an identifier and free-form properties, as
// exchanged with message-authoring and mapping clients.
type Feature struct {
	ID         interface{}
	Geometry   Geometry
	Properties map[string]interface{}
}

// DecodeOptions configures how wire documents are decoded.
type DecodeOptions struct {
	// Round enables rounding of every decoded coordinate to Digits decimals.
	Round bool

	// Digits is the number of decimals kept when Round is set.
	Digits int

	// Swap exchanges the two components of every decoded coordinate, for
	// documents sent in [lat, lon] order.
	Swap bool
}

// DefaultDecodeOptions returns default options: coordinates are kept as sent.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		Round:  false,
		Digits: 7,
		Swap:   false,
	}
}

// DecodeFeatures decodes a GeoJSON document into features.
//
// The document may be a FeatureCollection, a single Feature or a bare
// geometry object; a bare geometry becomes one feature with no id or
// properties. Features without a geometry are kept with a nil Geometry.
func DecodeFeatures(data []byte, opts DecodeOptions) ([]Feature, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}

	var raw []*geojson.Feature
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("decode feature collection: %w", err)
		}
		raw = fc.Features
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("decode feature: %w", err)
		}
		raw = []*geojson.Feature{f}
	default:
		gj, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("decode geojson geometry: %w", err)
		}
		raw = []*geojson.Feature{geojson.NewFeature(gj)}
	}

	features := make([]Feature, 0, len(raw))
	for i, f := range raw {
		if f == nil {
			continue
		}
		g, err := FromGeoJSON(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		if opts.Round {
			if err := Round(g, opts.Digits); err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
		}
		if opts.Swap {
			if err := Swap(g); err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
		}
		features = append(features, Feature{
			ID:         f.ID,
			Geometry:   g,
			Properties: f.Properties,
		})
	}
	return features, nil
}

// EncodeFeatures encodes features as a GeoJSON FeatureCollection.
func EncodeFeatures(features []Feature) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for i, f := range features {
		gj, err := ToGeoJSON(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		out := geojson.NewFeature(gj)
		out.ID = f.ID
		if f.Properties != nil {
			out.Properties = f.Properties
		}
		fc.AddFeature(out)
	}
	return fc.MarshalJSON()
}

// Geometries returns the non-nil geometries of features in order.
func Geometries(features []Feature) []Geometry {
	out := make([]Geometry, 0, len(features))
	for _, f := range features {
		if f.Geometry != nil {
			out = append(out, f.Geometry)
		}
	}
	return out
}
