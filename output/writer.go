package output

import (
	"fmt"
	"strings"

	"clocktransfer/importer"
	"clocktransfer/internal/timeutil"
	"clocktransfer/worklog"
)

// StderrTarget selects standard error instead of a file. Progress output owns
// standard output.
const StderrTarget = "-"

type Writer interface {
	Write(target string, records []worklog.Record) error
}

func WriterForFormat(format string) (Writer, error) {
	switch importer.NormalizeFormat(format) {
	case importer.FormatCSV:
		return &CSVWriter{}, nil
	case importer.FormatExcel:
		return &ExcelWriter{}, nil
	case importer.FormatSQLite:
		return &SQLiteWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteError reports a failure to persist the unprocessed set.
type WriteError struct {
	Target string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write unprocessed records to %s: %v", e.Target, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// UnprocessedTarget derives where the retry set for source is written.
func UnprocessedTarget(source string) string {
	if source == importer.StdinSource || strings.TrimSpace(source) == "" {
		return StderrTarget
	}
	return source + importer.UnprocessedSuffix
}

// WriteUnprocessed writes records to target in format. The format is the
// input's format; the target's own extension is ignored.
func WriteUnprocessed(target, format string, records []worklog.Record) error {
	if target == StderrTarget {
		format = importer.FormatCSV
	}
	writer, err := WriterForFormat(format)
	if err != nil {
		return &WriteError{Target: target, Err: err}
	}
	if err := writer.Write(target, records); err != nil {
		return &WriteError{Target: target, Err: err}
	}
	return nil
}

func recordValues(record worklog.Record) []string {
	return []string{
		record.IssueKey,
		record.IssueSummary,
		importer.FormatHours(record.Hours),
		timeutil.FormatWorkDate(record.WorkDate),
		record.ProjectKey,
		record.WorkDescription,
	}
}
