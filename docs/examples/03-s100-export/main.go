package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/seageom/pkg/geometry"
	"github.com/beetlebugorg/seageom/pkg/s100"
)

func describe(attr s100.Attribute) {
	switch a := attr.(type) {
	case *s100.PointProperty:
		// Single (lat, lon) position
		fmt.Printf("Point: %.6f, %.6f\n", a.Pos[0], a.Pos[1])

	case *s100.CurveProperty:
		for i, seg := range a.Segments {
			fmt.Printf("Curve segment %d with %d positions\n", i, seg.Len())
		}

	case *s100.SurfaceProperty:
		for i, patch := range a.Patches {
			fmt.Printf("Surface patch %d: %d positions, %d holes\n",
				i, patch.Exterior.Len(), len(patch.Interiors))
		}
	}
}

func main() {
	// A warning about a light buoy inside a restricted area
	g := &geometry.Collection{Geometries: []geometry.Geometry{
		geometry.NewPoint(12.61, 55.69),
		&geometry.Polygon{Rings: [][]geometry.Coord{
			{{12.5, 55.6}, {12.7, 55.6}, {12.7, 55.8}, {12.5, 55.8}, {12.5, 55.6}},
		}},
	}}

	attrs, err := s100.AttributesOf(g)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d spatial attributes (%s)\n", len(attrs), s100.SRSName)
	for _, a := range attrs {
		describe(a)
	}

	// Decoding flattens the collection back into one geometry
	back, err := s100.GeometryOf(attrs)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Decoded: %s\n", back.Kind())
}
