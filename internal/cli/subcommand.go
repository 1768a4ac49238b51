package cli

import (
	"strings"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// SubCommand pairs a command with the configuration bound to its flags.
//
// Values resolve in the order flag, environment (SEAGEOM_ prefix), config
// file, then flag default.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

// bind creates the subcommand configuration over the given flag sets.
// Dashes in flag names become underscores in environment variables, so
// --log-level reads SEAGEOM_LOG_LEVEL.
func (s *SubCommand) bind(sets ...*flag.FlagSet) error {
	s.Conf = viper.New()
	for _, fs := range sets {
		if err := s.Conf.BindPFlags(fs); err != nil {
			return err
		}
	}
	s.Conf.SetEnvPrefix(s.EnvPrefix)
	s.Conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.Conf.AutomaticEnv()
	return nil
}
