package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clocktransfer/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values. The API key
is masked.`,
	Example: `
  # Show active configuration
  clocktransfer config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		rendered, err := config.DisplayYAML(*cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Fprintln(out, "Config file loaded from:", configPath)
		} else {
			fmt.Fprintln(out, "No config file loaded; values come from defaults and environment.")
		}
		fmt.Fprintln(out, "Configuration:")
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
