package geometry

import (
	"errors"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
	}{
		{"point", NewPoint(12.5, 55.7)},
		{"line string", &LineString{Coordinates: []Coord{{0, 0}, {1, 1}, {2, 0}}}},
		{"polygon with hole", &Polygon{Rings: [][]Coord{square(0, 0, 10), square(2, 2, 1)}}},
		{"multi point", &MultiPoint{Coordinates: []Coord{{1, 2}, {3, 4}}}},
		{"multi line string", &MultiLineString{Lines: [][]Coord{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}}},
		{"multi polygon", &MultiPolygon{Polygons: [][][]Coord{{square(0, 0, 1)}, {square(5, 5, 1)}}}},
		{"empty collection", &Collection{}},
		{"nested collection", nested()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.g)
			require.NoError(t, err)

			got, err := Unmarshal(data)
			require.NoError(t, err)
			assert.True(t, Equal(tt.g, got), "got %s", data)
		})
	}
}

func TestMarshalPoint(t *testing.T) {
	data, err := Marshal(NewPoint(12.5, 55.7))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[12.5,55.7]}`, string(data))
}

func TestMarshalNil(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestUnmarshalDropsAltitude(t *testing.T) {
	g, err := Unmarshal([]byte(`{"type":"LineString","coordinates":[[1,2,30],[3,4,40]]}`))
	require.NoError(t, err)
	assert.Equal(t, []Coord{{1, 2}, {3, 4}}, g.(*LineString).Coordinates)
}

func TestFromGeoJSONShortPosition(t *testing.T) {
	_, err := FromGeoJSON(geojson.NewPointGeometry([]float64{12.5}))

	var malformed *ErrMalformedGeometry
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, KindPoint, malformed.Kind)
}

func TestFromGeoJSONUnsupported(t *testing.T) {
	_, err := FromGeoJSON(&geojson.Geometry{Type: "Curve"})

	var unsupported *ErrUnsupportedGeometry
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "Curve", unsupported.Kind)
}

func TestDecodeFeatures(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		count int
		ids   []interface{}
	}{
		{
			name:  "bare geometry",
			doc:   `{"type":"Point","coordinates":[1,2]}`,
			count: 1,
			ids:   []interface{}{nil},
		},
		{
			name:  "feature",
			doc:   `{"type":"Feature","id":"nw-1","geometry":{"type":"Point","coordinates":[1,2]},"properties":{"area":"Kattegat"}}`,
			count: 1,
			ids:   []interface{}{"nw-1"},
		},
		{
			name: "feature collection",
			doc: `{"type":"FeatureCollection","features":[
				{"type":"Feature","id":"a","geometry":{"type":"Point","coordinates":[1,2]},"properties":{}},
				{"type":"Feature","id":"b","geometry":{"type":"LineString","coordinates":[[1,2],[3,4]]},"properties":{}}
			]}`,
			count: 2,
			ids:   []interface{}{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features, err := DecodeFeatures([]byte(tt.doc), DefaultDecodeOptions())
			require.NoError(t, err)
			require.Len(t, features, tt.count)
			for i, f := range features {
				assert.Equal(t, tt.ids[i], f.ID)
				assert.NotNil(t, f.Geometry)
			}
		})
	}
}

func TestDecodeFeaturesOptions(t *testing.T) {
	doc := []byte(`{"type":"Point","coordinates":[55.123456,12.654321]}`)

	opts := DefaultDecodeOptions()
	opts.Round = true
	opts.Digits = 2
	opts.Swap = true

	features, err := DecodeFeatures(doc, opts)
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, Coord{12.65, 55.12}, features[0].Geometry.(*Point).Coordinate)
}

func TestDecodeFeaturesInvalidJSON(t *testing.T) {
	_, err := DecodeFeatures([]byte(`{"type":`), DefaultDecodeOptions())
	assert.Error(t, err)
}

func TestEncodeFeaturesRoundTrip(t *testing.T) {
	in := []Feature{
		{ID: "nw-1", Geometry: NewPoint(1, 2), Properties: map[string]interface{}{"area": "Kattegat"}},
		{ID: "nw-2", Geometry: &Polygon{Rings: [][]Coord{square(10, 55, 1)}}},
	}

	data, err := EncodeFeatures(in)
	require.NoError(t, err)

	out, err := DecodeFeatures(data, DefaultDecodeOptions())
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.True(t, Equal(in[i].Geometry, out[i].Geometry))
	}
	assert.Equal(t, "Kattegat", out[0].Properties["area"])
	assert.Len(t, Geometries(out), 2)
}
