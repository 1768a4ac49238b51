package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/beetlebugorg/seageom/pkg/engine"
	"github.com/beetlebugorg/seageom/pkg/geometry"
)

func safeConvert(doc string) error {
	g, err := geometry.Unmarshal([]byte(doc))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	// Client input is range checked before conversion
	if err := geometry.Validate(g); err != nil {
		var coord *geometry.ErrInvalidCoordinate
		if errors.As(err, &coord) {
			log.Printf("Rejected coordinate lat=%.2f lon=%.2f", coord.Lat, coord.Lon)
		}
		return err
	}

	if _, err := engine.ToEngine(g, engine.WGS84); err != nil {
		var malformed *geometry.ErrMalformedGeometry
		if errors.As(err, &malformed) {
			log.Printf("Malformed %s: %s", malformed.Kind, malformed.Reason)
		}
		return err
	}
	return nil
}

func main() {
	docs := []string{
		`{"type":"Point","coordinates":[12.6,55.7]}`,
		`{"type":"Point","coordinates":[12.6,95]}`,
		`{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0.5]]]}`,
	}

	for _, doc := range docs {
		if err := safeConvert(doc); err != nil {
			log.Printf("Error: %v", err)
			continue
		}
		fmt.Println("ok")
	}
}
