package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Geometry
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil and geometry", nil, NewPoint(0, 0), false},
		{"same point", NewPoint(1, 2), NewPoint(1, 2), true},
		{"different point", NewPoint(1, 2), NewPoint(2, 1), false},
		{"different kinds", &MultiPoint{Coordinates: []Coord{{1, 2}}}, NewPoint(1, 2), false},
		{"nil and empty slice", &Collection{}, &Collection{Geometries: []Geometry{}}, true},
		{
			name: "hole order matters",
			a:    &Polygon{Rings: [][]Coord{square(0, 0, 10), square(1, 1, 1), square(5, 5, 1)}},
			b:    &Polygon{Rings: [][]Coord{square(0, 0, 10), square(5, 5, 1), square(1, 1, 1)}},
			want: false,
		},
		{"nested", nested(), nested(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := nested()
	c, err := Clone(g)
	require.NoError(t, err)
	require.True(t, Equal(g, c))

	require.NoError(t, Visit(c, func(p *Coord) { p[0] = 999 }))
	assert.Equal(t, Coord{1, 2}, g.Geometries[0].(*Point).Coordinate)
	assert.Equal(t, Coord{0, 0}, g.Geometries[2].(*Collection).Geometries[0].(*Polygon).Rings[0][0])
}

func TestCloneNil(t *testing.T) {
	c, err := Clone(nil)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		g          Geometry
		malformed  bool
		outOfRange bool
	}{
		{name: "valid point", g: NewPoint(12.5, 55.7)},
		{name: "valid polygon", g: &Polygon{Rings: [][]Coord{square(0, 0, 1)}}},
		{name: "nil", g: nil, malformed: true},
		{name: "short line", g: &LineString{Coordinates: []Coord{{0, 0}}}, malformed: true},
		{name: "open ring", g: &Polygon{Rings: [][]Coord{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}}, malformed: true},
		{name: "ring too short", g: &Polygon{Rings: [][]Coord{{{0, 0}, {1, 0}, {0, 0}}}}, malformed: true},
		{name: "no rings", g: &Polygon{}, malformed: true},
		{name: "latitude out of range", g: NewPoint(10, 91), outOfRange: true},
		{name: "longitude out of range", g: NewPoint(190, 10), outOfRange: true},
		{
			name:      "nested short line",
			g:         &Collection{Geometries: []Geometry{NewPoint(0, 0), &LineString{}}},
			malformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.g)

			var malformed *ErrMalformedGeometry
			var coord *ErrInvalidCoordinate
			assert.Equal(t, tt.malformed, errors.As(err, &malformed), "malformed: %v", err)
			assert.Equal(t, tt.outOfRange, errors.As(err, &coord), "out of range: %v", err)
			if !tt.malformed && !tt.outOfRange {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCoordinate(t *testing.T) {
	assert.NoError(t, ValidateCoordinate(90, -180))
	assert.NoError(t, ValidateCoordinate(-90, 180))

	err := ValidateCoordinate(-90.5, 0)
	var coord *ErrInvalidCoordinate
	require.True(t, errors.As(err, &coord))
	assert.Equal(t, -90.5, coord.Lat)
}
