package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clocktransfer/config"
)

var configTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the example configuration.",
	Example: `
  # Write the template to a custom location
  clocktransfer config template > ./.clocktransfer.yaml
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), config.ExampleYAML())
		return err
	},
}

func init() {
	configCmd.AddCommand(configTemplateCmd)
}
