package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/beetlebugorg/seageom/pkg/extent"
	"github.com/beetlebugorg/seageom/pkg/geometry"
)

func newSearch() *SubCommand {
	sc := &SubCommand{EnvPrefix: EnvPrefix}
	sc.Cmd = &cobra.Command{
		Use:   "search",
		Short: "Select GeoJSON features intersecting a region",
		Long: `
Search indexes the extent of every input feature and prints, as a GeoJSON
FeatureCollection, the features whose extent intersects --bbox. The region
may run past ±180 and is split at the antimeridian like any stored extent.
`,
		Example: `  seageom search -i warnings.geojson --bbox -10,170,10,190`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, sc)
		},
	}

	sc.Cmd.Flags().StringP("in", "i", "-", "Input GeoJSON file, - for stdin")
	sc.Cmd.Flags().String("bbox", "", "Region as minLat,minLon,maxLat,maxLon")
	return sc
}

func runSearch(cmd *cobra.Command, sc *SubCommand) error {
	conf := sc.Conf
	region, err := parseBBox(conf.GetString("bbox"))
	if err != nil {
		return err
	}

	features, err := readFeatures(cmd.InOrStdin(), conf.GetString("in"), geometry.DefaultDecodeOptions())
	if err != nil {
		return err
	}

	idx := extent.NewIndex[int]()
	for i, f := range features {
		e, err := extent.Of(f.Geometry)
		if err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
		if e.IsEmpty() {
			continue
		}
		if err := idx.Insert(i, e); err != nil {
			return err
		}
	}

	ids := idx.Search(region)
	matched := make([]geometry.Feature, len(ids))
	for i, id := range ids {
		matched[i] = features[id]
	}

	log.Info().
		Int("indexed", idx.Len()).
		Int("matched", len(matched)).
		Msg("Searched features")

	data, err := geometry.EncodeFeatures(matched)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// parseBBox parses "minLat,minLon,maxLat,maxLon".
func parseBBox(s string) (extent.Extent, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return extent.Empty, fmt.Errorf("bbox %q: want minLat,minLon,maxLat,maxLon", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return extent.Empty, fmt.Errorf("bbox %q: %w", s, err)
		}
		v[i] = f
	}
	e := extent.Extent{MinLat: v[0], MinLon: v[1], MaxLat: v[2], MaxLon: v[3]}
	if e.IsEmpty() {
		return extent.Empty, fmt.Errorf("bbox %q: minLat is above maxLat", s)
	}
	return e, nil
}
