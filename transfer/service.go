package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"clocktransfer/clockify"
	"clocktransfer/config"
	"clocktransfer/worklog"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

type Options struct {
	WorkspaceID string
	// Offset is added to every work date, see config.TransferConfig.
	Offset time.Duration
	DryRun bool
}

// Service runs one sequential transfer pass over a set of records.
type Service struct {
	Client  clockify.Client
	Mapping config.ProjectMapping
	Options Options

	// Progress receives one line per record. Nil discards progress output.
	Progress io.Writer
	Logger   *log.Logger
	// Colorize wraps outcome messages in terminal colours.
	Colorize bool
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	skipColor    = color.New(color.FgYellow)
	dryRunColor  = color.New(color.FgCyan)
)

// Run processes records in order. Per-record failures never stop the pass;
// the returned error is only set when progress output cannot be written.
func (s *Service) Run(ctx context.Context, records []worklog.Record) (*Result, error) {
	progress := s.Progress
	if progress == nil {
		progress = io.Discard
	}
	tw := tabwriter.NewWriter(progress, 2, 0, 2, ' ', 0)

	logger := s.logger().With("run", uuid.NewString())
	logger.Debug("transfer started", "records", len(records), "dry_run", s.Options.DryRun, "offset", s.Options.Offset)

	result := &Result{Rows: make([]RowResult, 0, len(records))}
	for _, record := range records {
		fmt.Fprint(tw, ProgressPrefix(record))

		row := s.process(ctx, record, logger)
		result.add(row)

		fmt.Fprintln(tw, s.renderMessage(row))
	}

	if err := tw.Flush(); err != nil {
		return result, fmt.Errorf("flush progress output: %w", err)
	}

	logger.Debug(
		"transfer finished",
		"succeeded", result.Succeeded,
		"failed", len(result.Failed),
		"skipped", result.Skipped,
		"dry_run", result.DryRun,
	)
	return result, nil
}

// Process resolves, builds and submits a single record without writing progress.
func (s *Service) Process(ctx context.Context, record worklog.Record) RowResult {
	return s.process(ctx, record, s.logger())
}

func (s *Service) process(ctx context.Context, record worklog.Record, logger *log.Logger) RowResult {
	logger = logger.With("issue", record.IssueKey)

	resolver := &Resolver{Mapping: s.Mapping, Projects: s.Client, WorkspaceID: s.Options.WorkspaceID}
	projectID, err := resolver.Resolve(ctx, record.ProjectKey)
	if err != nil {
		var notFound *ProjectNotFoundError
		switch {
		case errors.Is(err, ErrProjectUnmapped):
			return RowResult{
				Record:  record,
				Outcome: OutcomeSkipped,
				Message: fmt.Sprintf("Could not map project: %s; skipped.", record.ProjectKey),
				Err:     err,
			}
		case errors.As(err, &notFound):
			return RowResult{
				Record:  record,
				Outcome: OutcomeSkipped,
				Message: fmt.Sprintf("Could not find project %q (key %s) in workspace; skipped.", notFound.ProjectName, notFound.ProjectKey),
				Err:     err,
			}
		default:
			logger.Debug("project lookup failed", "project_key", record.ProjectKey, "err", err)
			return RowResult{Record: record, Outcome: OutcomeFailure, Message: "error.", Err: err}
		}
	}

	entry, err := BuildTimeEntry(projectID, record.WorkDate, record.Hours, EntryDescription(record), s.Options.Offset)
	if err != nil {
		logger.Debug("time entry rejected", "hours", record.Hours, "err", err)
		return RowResult{Record: record, Outcome: OutcomeFailure, Message: "error.", Err: err}
	}

	if s.Options.DryRun {
		logger.Debug("dry run", "project_id", projectID, "start", entry.Start, "end", entry.End)
		return RowResult{Record: record, Outcome: OutcomeDryRun, Message: "dry run.", Entry: &entry}
	}

	resp, err := s.Client.CreateTimeEntry(ctx, s.Options.WorkspaceID, entry)
	if err != nil {
		logger.Debug("time entry submission failed", "project_id", projectID, "err", err)
		return RowResult{Record: record, Outcome: OutcomeFailure, Message: "error.", Entry: &entry, Err: err}
	}

	logger.Debug("time entry created", "status", resp.StatusCode, "id", resp.CreatedID())
	return RowResult{Record: record, Outcome: OutcomeSuccess, Message: "success.", Entry: &entry}
}

func (s *Service) renderMessage(row RowResult) string {
	if !s.Colorize {
		return row.Message
	}
	switch row.Outcome {
	case OutcomeSuccess:
		return successColor.Sprint(row.Message)
	case OutcomeFailure:
		return errorColor.Sprint(row.Message)
	case OutcomeSkipped:
		return skipColor.Sprint(row.Message)
	case OutcomeDryRun:
		return dryRunColor.Sprint(row.Message)
	default:
		return row.Message
	}
}

func (s *Service) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.New(io.Discard)
}

// ProgressPrefix identifies a record in the progress table.
func ProgressPrefix(record worklog.Record) string {
	return fmt.Sprintf(
		"%s\t // %s\t %s\t %sh\t ... ",
		singleLine(record.IssueKey),
		singleLine(record.IssueSummary),
		singleLine(record.WorkDescription),
		strconv.FormatFloat(record.Hours, 'f', -1, 64),
	)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func singleLine(value string) string {
	return lineBreaks.Replace(value)
}
