package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/beetlebugorg/seageom/pkg/engine"
	"github.com/beetlebugorg/seageom/pkg/geometry"
	"github.com/beetlebugorg/seageom/pkg/s100"
)

// s100Feature is the S-100 encoding of one input feature.
type s100Feature struct {
	ID         interface{}   `json:"id,omitempty" yaml:"id,omitempty"`
	Attributes []s100Element `json:"attributes" yaml:"attributes"`
}

type s100Element struct {
	Type     string         `json:"type" yaml:"type"`
	Property s100.Attribute `json:"property" yaml:"property"`
}

func newConvert() *SubCommand {
	sc := &SubCommand{EnvPrefix: EnvPrefix}
	sc.Cmd = &cobra.Command{
		Use:   "convert",
		Short: "Convert GeoJSON features to another encoding",
		Long: `
Convert reads a GeoJSON geometry, Feature or FeatureCollection and writes it
as GeoJSON, WKT (one line per feature), hex EWKB (one line per feature) or
S-100 spatial attributes (JSON or YAML).
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, sc)
		},
	}

	flags := sc.Cmd.Flags()
	flags.StringP("in", "i", "-", "Input GeoJSON file, - for stdin")
	flags.String("to", "geojson", "Target encoding, one of [geojson, wkt, ewkb, s100]")
	flags.Bool("round", false, "Round coordinates on decode")
	flags.Int("digits", geometry.DefaultDecodeOptions().Digits, "Decimals kept by --round")
	flags.Bool("swap", false, "Input coordinates are in [lat, lon] order")
	flags.StringP("output", "o", "json", "Document format for s100, one of [json, yaml]")
	return sc
}

func runConvert(cmd *cobra.Command, sc *SubCommand) error {
	conf := sc.Conf
	opts := geometry.DefaultDecodeOptions()
	opts.Round = conf.GetBool("round")
	opts.Digits = conf.GetInt("digits")
	opts.Swap = conf.GetBool("swap")

	features, err := readFeatures(cmd.InOrStdin(), conf.GetString("in"), opts)
	if err != nil {
		return err
	}

	to := conf.GetString("to")
	out := cmd.OutOrStdout()
	switch to {
	case "geojson":
		data, err := geometry.EncodeFeatures(features)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, string(data)); err != nil {
			return err
		}
	case "wkt", "ewkb":
		if err := writeEngine(out, to, features); err != nil {
			return err
		}
	case "s100":
		docs, err := toS100(features)
		if err != nil {
			return err
		}
		if err := writeDocument(out, conf.GetString("output"), docs); err != nil {
			return err
		}
	default:
		return fmt.Errorf("target %q: want geojson, wkt, ewkb or s100", to)
	}

	log.Info().
		Int("features", len(features)).
		Str("to", to).
		Msg("Converted features")
	return nil
}

func writeEngine(w io.Writer, format string, features []geometry.Feature) error {
	for i, f := range features {
		t, err := engine.ToEngine(f.Geometry, engine.WGS84)
		if err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
		if t == nil {
			log.Warn().Int("feature", i).Msg("Skipping feature without geometry")
			continue
		}

		var line string
		if format == "wkt" {
			line, err = engine.MarshalWKT(t)
		} else {
			var b []byte
			b, err = engine.MarshalEWKB(t)
			line = hex.EncodeToString(b)
		}
		if err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func toS100(features []geometry.Feature) ([]s100Feature, error) {
	docs := make([]s100Feature, 0, len(features))
	for i, f := range features {
		attrs, err := s100.AttributesOf(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		elems := make([]s100Element, len(attrs))
		for j, a := range attrs {
			elems[j] = s100Element{Type: a.Type(), Property: a}
		}
		docs = append(docs, s100Feature{ID: f.ID, Attributes: elems})
	}
	return docs, nil
}
