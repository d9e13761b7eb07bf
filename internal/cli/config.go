package cli

import (
	"github.com/spf13/cobra"
)

// configCommand creates the config command, which prints the effective
// configuration after all layers have been applied.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as TOML.

Values are resolved from defaults, the --config file, the dotenv file and
POKEDEX_* environment variables, in that order. The output is a valid
config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.Config.Write(stdout)
		},
	}
}
