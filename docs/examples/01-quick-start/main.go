package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/seageom/pkg/engine"
	"github.com/beetlebugorg/seageom/pkg/extent"
	"github.com/beetlebugorg/seageom/pkg/geometry"
)

const warning = `{
  "type": "Polygon",
  "coordinates": [[[12.5, 55.6], [12.7, 55.6], [12.7, 55.8], [12.5, 55.8], [12.5, 55.6]]]
}`

func main() {
	// Decode wire geometry
	g, err := geometry.Unmarshal([]byte(warning))
	if err != nil {
		log.Fatal(err)
	}

	// Convert to the engine model (SRID 4326)
	t, err := engine.ToEngine(g, engine.WGS84)
	if err != nil {
		log.Fatal(err)
	}

	wkt, err := engine.MarshalWKT(t)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Kind: %s\n", g.Kind())
	fmt.Printf("SRID: %d\n", t.SRID())
	fmt.Printf("WKT: %s\n", wkt)

	// Get geometry extent
	e, err := extent.Of(g)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Extent: [%.4f,%.4f] to [%.4f,%.4f]\n",
		e.MinLon, e.MinLat,
		e.MaxLon, e.MaxLat)
}
