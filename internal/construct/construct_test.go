package construct

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/beetlebugorg/seageom/pkg/geometry"
)

const srid = 4326

func ring(x, y, d float64) []geom.Coord {
	return []geom.Coord{{x, y}, {x + d, y}, {x + d, y + d}, {x, y + d}, {x, y}}
}

func TestConstructorsStampSRID(t *testing.T) {
	p, err := Point(geom.Coord{1, 2}, srid)
	require.NoError(t, err)
	ls, err := LineString([]geom.Coord{{0, 0}, {1, 1}}, srid)
	require.NoError(t, err)
	poly, err := Polygon([][]geom.Coord{ring(0, 0, 1)}, srid)
	require.NoError(t, err)
	mp, err := MultiPoint([]geom.Coord{{1, 2}}, srid)
	require.NoError(t, err)
	mls, err := MultiLineString([]*geom.LineString{ls}, srid)
	require.NoError(t, err)
	mpoly, err := MultiPolygon([]*geom.Polygon{poly}, srid)
	require.NoError(t, err)
	gc, err := Collection([]geom.T{p, ls}, srid)
	require.NoError(t, err)

	for _, g := range []geom.T{p, ls, poly, mp, mls, mpoly, gc} {
		assert.Equal(t, srid, g.SRID(), "%T", g)
		assert.Equal(t, geom.XY, g.Layout(), "%T", g)
	}
}

func TestMalformed(t *testing.T) {
	tests := []struct {
		name string
		kind geometry.Kind
		fn   func() error
	}{
		{
			name: "line with one coordinate",
			kind: geometry.KindLineString,
			fn: func() error {
				_, err := LineString([]geom.Coord{{0, 0}}, srid)
				return err
			},
		},
		{
			name: "ring with three coordinates",
			kind: geometry.KindPolygon,
			fn: func() error {
				_, err := LinearRing([]geom.Coord{{0, 0}, {1, 0}, {0, 0}})
				return err
			},
		},
		{
			name: "open ring",
			kind: geometry.KindPolygon,
			fn: func() error {
				_, err := LinearRing([]geom.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
				return err
			},
		},
		{
			name: "polygon without rings",
			kind: geometry.KindPolygon,
			fn: func() error {
				_, err := Polygon(nil, srid)
				return err
			},
		},
		{
			name: "polygon with bad hole",
			kind: geometry.KindPolygon,
			fn: func() error {
				_, err := Polygon([][]geom.Coord{ring(0, 0, 10), {{1, 1}, {2, 2}}}, srid)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()

			var malformed *geometry.ErrMalformedGeometry
			require.True(t, errors.As(err, &malformed), "got %v", err)
			assert.Equal(t, tt.kind, malformed.Kind)
		})
	}
}

func TestPolygonKeepsRingOrder(t *testing.T) {
	rings := [][]geom.Coord{ring(0, 0, 10), ring(1, 1, 1), ring(5, 5, 2)}
	p, err := Polygon(rings, srid)
	require.NoError(t, err)

	require.Equal(t, 3, p.NumLinearRings())
	for i, want := range rings {
		assert.Equal(t, want, p.LinearRing(i).Coords())
	}
}

func TestEmptyCollection(t *testing.T) {
	gc, err := Collection(nil, srid)
	require.NoError(t, err)
	assert.Equal(t, 0, gc.NumGeoms())
	assert.Equal(t, srid, gc.SRID())
}
