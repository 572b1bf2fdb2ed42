package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clocktransfer configuration file values.",
	Long: `Create, edit, display, and delete the clocktransfer configuration file.

The configuration stores the Clockify connection and the project mapping:
- clockify.url / clockify.api_key / clockify.workspace_id
- transfer.timezone_offset / transfer.unprocessed
- project_map (Jira key -> Clockify project name)
- project_ids (Jira key -> Clockify project ID)

Every value can be overridden with a CLOCKTRANSFER_ environment variable,
e.g. CLOCKTRANSFER_CLOCKIFY_API_KEY.`,
	Example: `
  # Print the example template
  clocktransfer config template

  # Create default config in $XDG_CONFIG_HOME/clocktransfer/config.yml
  clocktransfer config init

  # Show active config and source file
  clocktransfer config show

  # Open active config in editor (creates example if missing)
  clocktransfer config edit

  # Delete active config file
  clocktransfer config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
