// Command seageom converts and inspects maritime message geometry.
//
// Usage:
//
//	seageom convert -i warning.geojson --to s100 -o yaml
//	seageom extent -i warnings.geojson --expand 0.5
//	seageom validate -i warnings.geojson
//	seageom search -i warnings.geojson --bbox -10,170,10,190
package main

import "github.com/beetlebugorg/seageom/internal/cli"

func main() {
	cli.Execute()
}
