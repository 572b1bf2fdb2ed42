package importer

import (
	"errors"

	"clocktransfer/internal/timeutil"
	"clocktransfer/worklog"
)

// ToRecords parses every row of table into work records. Any column error
// fails the whole table.
func ToRecords(source string, table *Table) ([]worklog.Record, error) {
	if table == nil || len(table.Rows) == 0 {
		return []worklog.Record{}, nil
	}

	present := make(map[string]struct{}, len(table.Headers))
	for _, header := range table.Headers {
		present[normalizeHeader(header)] = struct{}{}
	}
	for _, column := range worklog.Columns() {
		if _, ok := present[normalizeHeader(column)]; !ok {
			return nil, &MalformedInputError{
				Source: source,
				Row:    1,
				Column: column,
				Err:    errors.New("missing column"),
			}
		}
	}

	records := make([]worklog.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		record, err := toRecord(source, row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func toRecord(source string, row Row) (worklog.Record, error) {
	hours, err := parseHours(row.Get(worklog.ColumnHours))
	if err != nil {
		return worklog.Record{}, &MalformedInputError{Source: source, Row: row.RowNumber, Column: worklog.ColumnHours, Err: err}
	}

	workDate, err := timeutil.ParseWorkDate(row.Get(worklog.ColumnWorkDate))
	if err != nil {
		return worklog.Record{}, &MalformedInputError{Source: source, Row: row.RowNumber, Column: worklog.ColumnWorkDate, Err: err}
	}

	return worklog.Record{
		IssueKey:        row.Get(worklog.ColumnIssueKey),
		IssueSummary:    row.Get(worklog.ColumnIssueSummary),
		Hours:           hours,
		WorkDate:        workDate,
		ProjectKey:      row.Get(worklog.ColumnProjectKey),
		WorkDescription: row.Get(worklog.ColumnWorkDescription),
	}, nil
}
