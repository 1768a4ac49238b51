package s100

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"gopkg.in/yaml.v3"

	"github.com/beetlebugorg/seageom/pkg/engine"
	"github.com/beetlebugorg/seageom/pkg/geometry"
)

func square(x, y, d float64) []geometry.Coord {
	return []geometry.Coord{{x, y}, {x + d, y}, {x + d, y + d}, {x, y + d}, {x, y}}
}

func TestPositionList(t *testing.T) {
	p := ToPositionList([]geom.Coord{{12.5, 55.7}, {13, 56}})
	assert.Equal(t, PositionList{55.7, 12.5, 56, 13}, p)
	assert.Equal(t, 2, p.Len())

	coords, err := FromPositionList(p)
	require.NoError(t, err)
	assert.Equal(t, []geom.Coord{{12.5, 55.7}, {13, 56}}, coords)
}

func TestFromPositionListOdd(t *testing.T) {
	_, err := FromPositionList(PositionList{1, 2, 3})

	var malformed *geometry.ErrMalformedGeometry
	assert.True(t, errors.As(err, &malformed))
}

func TestToAttributes(t *testing.T) {
	tests := []struct {
		name string
		g    geometry.Geometry
		want []Attribute
	}{
		{
			name: "point",
			g:    geometry.NewPoint(12.5, 55.7),
			want: []Attribute{&PointProperty{Pos: PositionList{55.7, 12.5}}},
		},
		{
			name: "line",
			g:    &geometry.LineString{Coordinates: []geometry.Coord{{0, 1}, {2, 3}}},
			want: []Attribute{&CurveProperty{Segments: []PositionList{{1, 0, 3, 2}}}},
		},
		{
			name: "polygon with hole",
			g:    &geometry.Polygon{Rings: [][]geometry.Coord{square(0, 0, 10), square(2, 2, 1)}},
			want: []Attribute{&SurfaceProperty{Patches: []Patch{{
				Exterior:  PositionList{0, 0, 0, 10, 10, 10, 10, 0, 0, 0},
				Interiors: []PositionList{{2, 2, 2, 3, 3, 3, 3, 2, 2, 2}},
			}}}},
		},
		{
			name: "multi line string yields one curve per line",
			g: &geometry.MultiLineString{Lines: [][]geometry.Coord{
				{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}},
			}},
			want: []Attribute{
				&CurveProperty{Segments: []PositionList{{0, 0, 1, 1}}},
				&CurveProperty{Segments: []PositionList{{2, 2, 3, 3}}},
			},
		},
		{
			name: "empty collection",
			g:    &geometry.Collection{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AttributesOf(tt.g)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AttributesOf() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToAttributesFlattensNesting(t *testing.T) {
	g := &geometry.Collection{Geometries: []geometry.Geometry{
		geometry.NewPoint(1, 2),
		&geometry.Collection{Geometries: []geometry.Geometry{
			&geometry.LineString{Coordinates: []geometry.Coord{{0, 0}, {1, 1}}},
			&geometry.LineString{Coordinates: []geometry.Coord{{2, 2}, {3, 3}}},
		}},
	}}

	attrs, err := AttributesOf(g)
	require.NoError(t, err)
	require.Len(t, attrs, 3)
	assert.IsType(t, &PointProperty{}, attrs[0])
	assert.IsType(t, &CurveProperty{}, attrs[1])
	assert.IsType(t, &CurveProperty{}, attrs[2])
	assert.Equal(t, PositionList{2, 2, 3, 3}, attrs[2].(*CurveProperty).Segments[0])
}

func TestToAttributesLinearRing(t *testing.T) {
	lr := geom.NewLinearRing(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 0}})
	attrs, err := ToAttributes(lr)
	require.NoError(t, err)
	require.Len(t, attrs, 1)
	assert.Equal(t, 4, attrs[0].(*CurveProperty).Segments[0].Len())
}

func TestToAttributesNil(t *testing.T) {
	attrs, err := ToAttributes(nil)
	require.NoError(t, err)
	assert.Empty(t, attrs)
}

func TestFromAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attrs []Attribute
		want  geometry.Geometry
	}{
		{
			name:  "point",
			attrs: []Attribute{&PointProperty{Pos: PositionList{55.7, 12.5}}},
			want:  geometry.NewPoint(12.5, 55.7),
		},
		{
			name:  "single position curve is a point",
			attrs: []Attribute{&CurveProperty{Segments: []PositionList{{55.7, 12.5}}}},
			want:  geometry.NewPoint(12.5, 55.7),
		},
		{
			name:  "single position patch is a point",
			attrs: []Attribute{&SurfaceProperty{Patches: []Patch{{Exterior: PositionList{1, 2}}}}},
			want:  geometry.NewPoint(2, 1),
		},
		{
			name:  "curve with two segments",
			attrs: []Attribute{&CurveProperty{Segments: []PositionList{{0, 0, 1, 1}, {2, 2, 3, 3}}}},
			want: &geometry.Collection{Geometries: []geometry.Geometry{
				&geometry.LineString{Coordinates: []geometry.Coord{{0, 0}, {1, 1}}},
				&geometry.LineString{Coordinates: []geometry.Coord{{2, 2}, {3, 3}}},
			}},
		},
		{
			name: "two single segment curves",
			attrs: []Attribute{
				&CurveProperty{Segments: []PositionList{{0, 0, 1, 1}}},
				&CurveProperty{Segments: []PositionList{{2, 2, 3, 3}}},
			},
			want: &geometry.MultiLineString{Lines: [][]geometry.Coord{
				{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}},
			}},
		},
		{
			name: "surface with hole",
			attrs: []Attribute{&SurfaceProperty{Patches: []Patch{{
				Exterior:  PositionList{0, 0, 0, 10, 10, 10, 10, 0, 0, 0},
				Interiors: []PositionList{{2, 2, 2, 3, 3, 3, 3, 2, 2, 2}},
			}}}},
			want: &geometry.Polygon{Rings: [][]geometry.Coord{square(0, 0, 10), square(2, 2, 1)}},
		},
		{
			name: "mixed",
			attrs: []Attribute{
				&PointProperty{Pos: PositionList{1, 2}},
				&CurveProperty{Segments: []PositionList{{0, 0, 1, 1}}},
			},
			want: &geometry.Collection{Geometries: []geometry.Geometry{
				geometry.NewPoint(2, 1),
				&geometry.LineString{Coordinates: []geometry.Coord{{0, 0}, {1, 1}}},
			}},
		},
		{
			name:  "none",
			attrs: nil,
			want:  &geometry.Collection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GeometryOf(tt.attrs)
			require.NoError(t, err)
			assert.True(t, geometry.Equal(tt.want, got), "got %#v", got)
		})
	}
}

func TestFromAttributesStampsSRID(t *testing.T) {
	eng, err := FromAttributes([]Attribute{&PointProperty{Pos: PositionList{1, 2}}})
	require.NoError(t, err)
	assert.Equal(t, engine.WGS84.SRID(), eng.SRID())
}

func TestFromAttributesErrors(t *testing.T) {
	tests := []struct {
		name  string
		attrs []Attribute
	}{
		{"point with two positions", []Attribute{&PointProperty{Pos: PositionList{1, 2, 3, 4}}}},
		{"odd position list", []Attribute{&CurveProperty{Segments: []PositionList{{1, 2, 3}}}}},
		{"curve without segments", []Attribute{&CurveProperty{}}},
		{"open patch", []Attribute{&SurfaceProperty{Patches: []Patch{{Exterior: PositionList{0, 0, 0, 1, 1, 1, 1, 0}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromAttributes(tt.attrs)

			var malformed *geometry.ErrMalformedGeometry
			assert.True(t, errors.As(err, &malformed), "got %v", err)
		})
	}
}

func TestFromAttributesUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		attrs []Attribute
	}{
		{"nil attribute", []Attribute{nil}},
		{"nil point", []Attribute{&PointProperty{Pos: PositionList{1, 2}}, (*PointProperty)(nil)}},
		{"nil curve", []Attribute{(*CurveProperty)(nil)}},
		{"nil surface", []Attribute{(*SurfaceProperty)(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromAttributes(tt.attrs)

			var unsupported *geometry.ErrUnsupportedGeometry
			assert.True(t, errors.As(err, &unsupported), "got %v", err)
		})
	}
}

func TestToAttributesNilPointer(t *testing.T) {
	_, err := ToAttributes((*geom.Polygon)(nil))

	var unsupported *geometry.ErrUnsupportedGeometry
	assert.True(t, errors.As(err, &unsupported), "got %v", err)

	_, err = AttributesOf(&geometry.Collection{Geometries: []geometry.Geometry{(*geometry.LineString)(nil)}})
	assert.True(t, errors.As(err, &unsupported), "got %v", err)
}

func TestMultiPolygonRoundTrip(t *testing.T) {
	g := &geometry.MultiPolygon{Polygons: [][][]geometry.Coord{{square(0, 0, 1)}, {square(5, 5, 1)}}}

	attrs, err := AttributesOf(g)
	require.NoError(t, err)
	require.Len(t, attrs, 2)

	back, err := GeometryOf(attrs)
	require.NoError(t, err)
	assert.True(t, geometry.Equal(g, back))
}

func TestAttributeEncoding(t *testing.T) {
	attr := &SurfaceProperty{Patches: []Patch{{Exterior: PositionList{0, 0, 0, 1, 1, 1, 0, 0}}}}

	data, err := json.Marshal(attr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"patches":[{"exterior":[0,0,0,1,1,1,0,0]}]}`, string(data))

	out, err := yaml.Marshal(&PointProperty{Pos: PositionList{55.5, 12.25}})
	require.NoError(t, err)
	assert.Equal(t, "pos:\n    - 55.5\n    - 12.25\n", string(out))

	assert.Equal(t, "surfaceProperty", attr.Type())
	assert.Equal(t, SRSName, engine.WGS84.String())
}
