package importer

import (
	"fmt"
	"os"

	"clocktransfer/storage"
	"clocktransfer/worklog"
)

// SQLiteReader reads the timesheet table of a SQLite sheet file, such as an
// unprocessed-issues file written for a SQLite source.
type SQLiteReader struct{}

func (r *SQLiteReader) Read(path string) (*Table, error) {
	// sql.Open would silently create a missing database file.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open sqlite file %s: %w", path, err)
	}

	store, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite file %s: %w", path, err)
	}
	defer store.Close()

	stored, err := store.ListRows()
	if err != nil {
		return nil, err
	}

	headers := worklog.Columns()
	normalizedHeaders := normalizeHeaders(headers)
	table := &Table{Headers: headers, Rows: make([]Row, 0, len(stored))}
	for i, row := range stored {
		cells := []string{
			row.IssueKey,
			row.IssueSummary,
			row.Hours,
			row.WorkDate,
			row.ProjectKey,
			row.WorkDescription,
		}
		table.Rows = append(table.Rows, newRow(i+2, normalizedHeaders, cells))
	}
	return table, nil
}
