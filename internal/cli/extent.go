package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/beetlebugorg/seageom/pkg/extent"
	"github.com/beetlebugorg/seageom/pkg/geometry"
)

type extentReport struct {
	Extent   *extent.Extent  `json:"extent" yaml:"extent"`
	Boxes    []extent.Extent `json:"boxes" yaml:"boxes"`
	Features []featureExtent `json:"features,omitempty" yaml:"features,omitempty"`
}

type featureExtent struct {
	ID     interface{}    `json:"id,omitempty" yaml:"id,omitempty"`
	Extent *extent.Extent `json:"extent" yaml:"extent"`
}

func newExtent() *SubCommand {
	sc := &SubCommand{EnvPrefix: EnvPrefix}
	sc.Cmd = &cobra.Command{
		Use:   "extent",
		Short: "Print the extent of GeoJSON features",
		Long: `
Extent computes the bounding box of every input feature and of the whole
document, grows it by --expand degrees and prints the boxes a rectangular
spatial filter needs after antimeridian and prime meridian splitting.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtent(cmd, sc)
		},
	}

	flags := sc.Cmd.Flags()
	flags.StringP("in", "i", "-", "Input GeoJSON file, - for stdin")
	flags.Float64("expand", 0, "Margin in degrees added on every side")
	flags.Bool("per-feature", false, "Also report the extent of each feature")
	flags.StringP("output", "o", "json", "Document format, one of [json, yaml]")
	return sc
}

func runExtent(cmd *cobra.Command, sc *SubCommand) error {
	conf := sc.Conf
	features, err := readFeatures(cmd.InOrStdin(), conf.GetString("in"), geometry.DefaultDecodeOptions())
	if err != nil {
		return err
	}

	margin := conf.GetFloat64("expand")
	var report extentReport
	total := extent.Empty
	for i, f := range features {
		e, err := extent.Of(f.Geometry)
		if err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
		total = total.Union(e)
		if conf.GetBool("per-feature") {
			report.Features = append(report.Features, featureExtent{ID: f.ID, Extent: present(e.Expand(margin))})
		}
	}

	if total.IsEmpty() {
		log.Warn().Int("features", len(features)).Msg("Input has no coordinates")
	} else {
		total = total.Expand(margin)
		report.Extent = &total
		report.Boxes = extent.Normalize(total)
	}

	log.Debug().
		Int("features", len(features)).
		Int("boxes", len(report.Boxes)).
		Msg("Computed extent")
	return writeDocument(cmd.OutOrStdout(), conf.GetString("output"), report)
}

// present returns nil for an empty extent so that it encodes as null.
func present(e extent.Extent) *extent.Extent {
	if e.IsEmpty() {
		return nil
	}
	return &e
}
