package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"clocktransfer/clockify"
	"clocktransfer/config"
)

var projectsIncludeArchived bool

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List Clockify projects of the configured workspace",
	Long: `List the projects of clockify.workspace_id with their IDs.

Use the IDs for project_ids entries, or the exact names for project_map entries.`,
	Example: `
  # List active projects
  clocktransfer projects

  # Include archived projects
  clocktransfer projects --archived
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		client, err := newClockifyClient(cfg.Clockify)
		if err != nil {
			return err
		}
		return listProjects(cmd.Context(), client, cfg.Clockify.WorkspaceID, projectsIncludeArchived, cmd.OutOrStdout())
	},
}

func listProjects(ctx context.Context, client clockify.Client, workspaceID string, includeArchived bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	projects, err := client.ListProjects(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	visible := make([]clockify.Project, 0, len(projects))
	for _, project := range projects {
		if project.Archived && !includeArchived {
			continue
		}
		visible = append(visible, project)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return strings.ToLower(visible[i].Name) < strings.ToLower(visible[j].Name)
	})

	if len(visible) == 0 {
		fmt.Fprintln(out, "No projects found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCLIENT\tARCHIVED")
	for _, project := range visible {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", project.ID, project.Name, project.ClientName, project.Archived)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.Flags().BoolVar(&projectsIncludeArchived, "archived", false, "Include archived projects")
}
