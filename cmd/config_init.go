package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file from the example template.",
	Long: `Create a new configuration file from the same example template used by "config edit".

If a configuration file is already in use, no new file is written.`,
	Example: `
  # Create default config at $XDG_CONFIG_HOME/clocktransfer/config.yml
  clocktransfer config init

  # Create config at a custom path
  clocktransfer --config ./clocktransfer.yaml config init
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveDefaultConfig(cmd.OutOrStdout())
	},
}

func saveDefaultConfig(out io.Writer) error {
	configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	created, err := ensureConfigFileWithTemplate(configPath)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(out, "New config file created at: %s\n", configPath)
		return nil
	}

	fmt.Fprintf(out, "Config file already exists at: %s\n", configPath)
	return nil
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
