package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/seageom/pkg/extent"
	"github.com/beetlebugorg/seageom/pkg/geometry"
)

func main() {
	warnings := map[string]geometry.Geometry{
		"NW-101": geometry.NewPoint(179.2, -17.8),
		"NW-102": &geometry.LineString{Coordinates: []geometry.Coord{{-179.8, -18.1}, {-179.2, -18.4}}},
		"NW-103": geometry.NewPoint(12.6, 55.7),
	}

	// Index warning extents
	idx := extent.NewIndex[string]()
	for id, g := range warnings {
		e, err := extent.Of(g)
		if err != nil {
			log.Fatal(err)
		}
		if err := idx.Insert(id, e); err != nil {
			log.Fatal(err)
		}
	}

	// Viewport dragged east past the antimeridian (Fiji)
	viewport := extent.Extent{
		MinLat: -19, MinLon: 178,
		MaxLat: -17, MaxLon: 182,
	}

	// Each box is one rectangular filter clause
	for _, box := range extent.Normalize(viewport) {
		fmt.Printf("Box: [%.1f,%.1f] to [%.1f,%.1f]\n", box.MinLon, box.MinLat, box.MaxLon, box.MaxLat)
	}

	ids := idx.Search(viewport)
	fmt.Printf("Visible warnings: %d\n", len(ids))
	for _, id := range ids {
		fmt.Printf("  %s: %s\n", id, warnings[id].Kind())
	}
}
