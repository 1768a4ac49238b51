// Package cli implements the seageom command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// EnvPrefix prefixes every environment variable read by the commands.
const EnvPrefix = "SEAGEOM"

// NewRootCmd returns the seageom command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seageom",
		Short: "Convert and inspect maritime message geometry",
		Long: `
seageom converts GeoJSON geometry to engine (WKT, EWKB) and S-100 spatial
attribute encodings, computes normalized extents, validates coordinates and
searches features by region.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	root.PersistentFlags().String("log-level", "info",
		"Log level, one of [trace, debug, info, warn, error]")
	root.PersistentFlags().String("log-format", "console",
		"Log format, one of [console, json]")

	subcommands := []*SubCommand{
		newConvert(), newExtent(), newValidate(), newSearch(),
	}
	for _, sc := range subcommands {
		root.AddCommand(sc.Cmd)
		if err := sc.bind(sc.Cmd.Flags(), root.PersistentFlags()); err != nil {
			panic(err)
		}
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		for _, sc := range subcommands {
			if sc.Cmd != cmd {
				continue
			}
			if cfg := sc.Conf.GetString("config"); cfg != "" {
				sc.Conf.SetConfigFile(cfg)
				if err := sc.Conf.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config: %w", err)
				}
			}
			return setupLogger(cmd.ErrOrStderr(),
				sc.Conf.GetString("log-level"), sc.Conf.GetString("log-format"))
		}
		return nil
	}

	return root
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
