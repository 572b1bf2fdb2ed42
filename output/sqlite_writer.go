package output

import (
	"fmt"

	"clocktransfer/storage"
	"clocktransfer/worklog"
)

// SQLiteWriter replaces the timesheet table of the target database, or adds
// to it when Append is set.
type SQLiteWriter struct {
	Append bool
}

func (w *SQLiteWriter) Write(target string, records []worklog.Record) error {
	if target == StderrTarget {
		return fmt.Errorf("sqlite output needs a file target")
	}

	store, err := storage.OpenSQLite(target)
	if err != nil {
		return err
	}
	defer store.Close()

	rows := make([]storage.Row, 0, len(records))
	for _, record := range records {
		values := recordValues(record)
		rows = append(rows, storage.Row{
			IssueKey:        values[0],
			IssueSummary:    values[1],
			Hours:           values[2],
			WorkDate:        values[3],
			ProjectKey:      values[4],
			WorkDescription: values[5],
		})
	}

	if w.Append {
		_, err = store.InsertRows(rows)
	} else {
		_, err = store.ReplaceRows(rows)
	}
	return err
}
