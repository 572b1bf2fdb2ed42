package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"clocktransfer/importer"
	"clocktransfer/output"
)

var (
	convertFormat       string
	convertOutput       string
	convertOutputFormat string
	convertAppend       bool
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE|-",
	Short: "Convert a timesheet between CSV, Excel and SQLite",
	Long: `Read a timesheet in any supported format and write it in another.

The rows are parsed and validated exactly like "transfer" does, so convert can
also be used to check an export before transferring it. Typical uses:
- give an unprocessed-issues file a proper extension
- collect several exports into one SQLite sheet with --append

Output format can be selected explicitly via --output-format or inferred from --output extension.`,
	Example: `
  # Excel export to CSV
  clocktransfer convert timesheet.xlsx --output ./timesheet.csv

  # Retry file to Excel
  clocktransfer convert timesheet.csv-unprocessed-issues --format csv --output ./retry.xlsx

  # Collect two exports into one SQLite sheet
  clocktransfer convert january.csv --output ./sheet.db
  clocktransfer convert february.csv --output ./sheet.db --append
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], convertFormat, convertOutput, convertOutputFormat, convertAppend, cmd.OutOrStdout())
	},
}

func runConvert(source, format, target, targetFormat string, appendRows bool, out io.Writer) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("--output is required")
	}

	sourceFormat, err := importer.InferFormat(source, format)
	if err != nil {
		return err
	}
	records, err := importer.Read(source, sourceFormat)
	if err != nil {
		return err
	}

	resolvedTargetFormat, err := importer.InferFormat(target, targetFormat)
	if err != nil {
		return err
	}

	var writer output.Writer
	if resolvedTargetFormat == importer.FormatSQLite {
		writer = &output.SQLiteWriter{Append: appendRows}
	} else {
		if appendRows {
			return fmt.Errorf("--append is only supported for sqlite output")
		}
		writer, err = output.WriterForFormat(resolvedTargetFormat)
		if err != nil {
			return err
		}
	}

	if err := writer.Write(target, records); err != nil {
		return err
	}

	fmt.Fprintf(out, "Convert completed. Rows: %d, Format: %s, File: %s\n", len(records), resolvedTargetFormat, target)
	return nil
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFormat, "format", "", "Input format override: csv|excel|sqlite")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file path")
	convertCmd.Flags().StringVar(&convertOutputFormat, "output-format", "", "Output format override: csv|excel|sqlite")
	convertCmd.Flags().BoolVar(&convertAppend, "append", false, "Append to an existing SQLite sheet instead of replacing it")
}
