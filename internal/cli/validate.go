package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/beetlebugorg/seageom/pkg/engine"
	"github.com/beetlebugorg/seageom/pkg/geometry"
)

func newValidate() *SubCommand {
	sc := &SubCommand{EnvPrefix: EnvPrefix}
	sc.Cmd = &cobra.Command{
		Use:   "validate",
		Short: "Check GeoJSON features for structural and range errors",
		Long: `
Validate checks that every feature is well formed (lines with two or more
positions, closed rings of four or more) and that every coordinate lies
within the WGS-84 range. Each problem is printed on its own line and the
command fails if any feature is invalid.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, sc)
		},
	}

	sc.Cmd.Flags().StringP("in", "i", "-", "Input GeoJSON file, - for stdin")
	sc.Cmd.Flags().Bool("engine", false, "Also build each geometry in the engine model")
	return sc
}

func runValidate(cmd *cobra.Command, sc *SubCommand) error {
	conf := sc.Conf
	features, err := readFeatures(cmd.InOrStdin(), conf.GetString("in"), geometry.DefaultDecodeOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	invalid := 0
	for i, f := range features {
		err := geometry.Validate(f.Geometry)
		if err == nil && conf.GetBool("engine") {
			_, err = engine.ToEngine(f.Geometry, engine.WGS84)
		}
		if err == nil {
			continue
		}
		invalid++
		log.Debug().Int("feature", i).Err(err).Msg("Invalid feature")
		if _, werr := fmt.Fprintf(out, "feature %d (%s): %v\n", i, featureName(f, i), err); werr != nil {
			return werr
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d features invalid", invalid, len(features))
	}
	_, err = fmt.Fprintf(out, "ok: %d features\n", len(features))
	return err
}

// featureName returns the feature ID, or "#i" for features without one.
func featureName(f geometry.Feature, i int) string {
	if f.ID == nil {
		return fmt.Sprintf("#%d", i)
	}
	return fmt.Sprint(f.ID)
}
