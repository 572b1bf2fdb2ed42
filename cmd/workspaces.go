package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"clocktransfer/clockify"
	"clocktransfer/config"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List Clockify workspaces visible to the API key",
	Long: `List workspace IDs and names for clockify.workspace_id.

Only clockify.url and clockify.api_key need to be configured.`,
	Example: `
  clocktransfer workspaces
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		credentials, err := config.LoadCredentials()
		if err != nil {
			return err
		}
		client, err := newClockifyClient(*credentials)
		if err != nil {
			return err
		}
		return listWorkspaces(cmd.Context(), client, cmd.OutOrStdout())
	},
}

func listWorkspaces(ctx context.Context, client clockify.Client, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	workspaces, err := client.ListWorkspaces(ctx)
	if err != nil {
		return fmt.Errorf("list workspaces: %w", err)
	}
	if len(workspaces) == 0 {
		fmt.Fprintln(out, "No workspaces found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, workspace := range workspaces {
		fmt.Fprintf(tw, "%s\t%s\n", workspace.ID, workspace.Name)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
}
