package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"clocktransfer/clockify"
	"clocktransfer/config"
	"clocktransfer/importer"
	"clocktransfer/output"
	"clocktransfer/transfer"
)

var (
	transferDryRun      bool
	transferFormat      string
	transferUnprocessed string
	transferSummaryPath string
)

var transferCmd = &cobra.Command{
	Use:   "transfer FILE|-",
	Short: "Create Clockify time entries from a Jira timesheet export",
	Long: `Read a Jira timesheet export and create one Clockify time entry per row.

For every row the Jira project key is mapped to a Clockify project:
- project_ids entries are used as project IDs directly
- project_map entries are looked up by exact name in the workspace
- unmapped keys and unknown project names are skipped

Each entry starts at the row's work date plus transfer.timezone_offset and
lasts for the row's hours. The description is "<issue key>: <work description>".

Rows whose submission failed are written to <FILE>-unprocessed-issues in the
input format (standard error when reading from standard input). Re-run the
command on that file to retry them.`,
	Example: `
  # Preview which entries would be created
  clocktransfer transfer timesheet.csv --dry-run

  # Transfer and write a per-day summary of the created entries
  clocktransfer transfer timesheet.xlsx --summary ./daily-summary.csv

  # Retry failed rows from a previous run
  clocktransfer transfer timesheet.xlsx-unprocessed-issues --format excel

  # Write the whole input for retry when any row fails
  clocktransfer transfer timesheet.csv --unprocessed all
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		opts := transferOptions{
			Source:      args[0],
			Format:      transferFormat,
			DryRun:      transferDryRun,
			Unprocessed: transferUnprocessed,
			SummaryPath: transferSummaryPath,
		}
		client, err := newClockifyClient(cfg.Clockify)
		if err != nil {
			return err
		}

		_, err = runTransfer(cmd.Context(), cfg, client, opts, cmd.OutOrStdout())
		return err
	},
}

type transferOptions struct {
	Source      string
	Format      string
	DryRun      bool
	Unprocessed string
	SummaryPath string
}

func runTransfer(ctx context.Context, cfg *config.Config, client clockify.Client, opts transferOptions, out io.Writer) (*transfer.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	mode := cfg.Transfer.Unprocessed
	if strings.TrimSpace(opts.Unprocessed) != "" {
		mode = strings.ToLower(strings.TrimSpace(opts.Unprocessed))
	}
	if mode != config.UnprocessedFailed && mode != config.UnprocessedAll {
		return nil, fmt.Errorf("unsupported --unprocessed mode %q (use failed or all)", opts.Unprocessed)
	}

	format, err := importer.InferFormat(opts.Source, opts.Format)
	if err != nil {
		return nil, err
	}
	records, err := importer.Read(opts.Source, format)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		fmt.Fprintf(out, "No rows found in %s.\n", opts.Source)
		return &transfer.Result{}, nil
	}

	mapping, err := cfg.Mapping()
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded project mapping", "keys", mapping.Len(), "rows", len(records))

	service := &transfer.Service{
		Client:  client,
		Mapping: mapping,
		Options: transfer.Options{
			WorkspaceID: cfg.Clockify.WorkspaceID,
			Offset:      cfg.Transfer.TimezoneOffset,
			DryRun:      opts.DryRun,
		},
		Progress: out,
		Logger:   logger.With("source", opts.Source),
		Colorize: out == os.Stdout && !color.NoColor,
	}

	result, err := service.Run(ctx, records)
	if err != nil {
		return result, err
	}

	fmt.Fprintf(out, "\nRows: %d, transferred: %d, skipped: %d, failed: %d", len(records), result.Succeeded, result.Skipped, len(result.Failed))
	if opts.DryRun {
		fmt.Fprintf(out, ", dry run: %d", result.DryRun)
	}
	fmt.Fprintln(out)

	if retry := transfer.UnprocessedRecords(records, result, mode); len(retry) > 0 {
		target := output.UnprocessedTarget(opts.Source)
		if err := output.WriteUnprocessed(target, format, retry); err != nil {
			return result, err
		}
		reportUnprocessed(out, target, len(retry))
	}

	if strings.TrimSpace(opts.SummaryPath) != "" {
		if err := writeTransferSummary(opts.SummaryPath, result); err != nil {
			return result, err
		}
		fmt.Fprintf(out, "Daily summary written to: %s\n", opts.SummaryPath)
	}

	return result, nil
}

func reportUnprocessed(out io.Writer, target string, rows int) {
	if target == output.StderrTarget {
		fmt.Fprintf(out, "Unprocessed issues written to standard error (%d rows)\n", rows)
		return
	}
	fmt.Fprintf(out, "Unprocessed issues written to: %s (%d rows)\n", target, rows)
}

func writeTransferSummary(path string, result *transfer.Result) error {
	format, err := importer.InferFormat(path, "")
	if err != nil {
		return err
	}

	entries := make([]clockify.TimeEntry, 0, len(result.Rows))
	for _, row := range result.Rows {
		if row.Entry == nil {
			continue
		}
		if row.Outcome == transfer.OutcomeSuccess || row.Outcome == transfer.OutcomeDryRun {
			entries = append(entries, *row.Entry)
		}
	}
	return output.WriteDailySummaries(path, format, output.BuildDailySummaries(entries))
}

func init() {
	rootCmd.AddCommand(transferCmd)

	transferCmd.Flags().BoolVar(&transferDryRun, "dry-run", false, "Resolve projects and build entries without creating them")
	transferCmd.Flags().StringVar(&transferFormat, "format", "", "Input format override: csv|excel|sqlite (default: from file extension)")
	transferCmd.Flags().StringVar(&transferUnprocessed, "unprocessed", "", "Rows written for retry when a row fails: failed|all (default: transfer.unprocessed)")
	transferCmd.Flags().StringVar(&transferSummaryPath, "summary", "", "Write a per-day summary of the created entries (.csv or .xlsx)")
}
