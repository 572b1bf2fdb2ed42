package worklog

import "time"

// Column headers of the timesheet table, in export order.
const (
	ColumnIssueKey        = "Issue Key"
	ColumnIssueSummary    = "Issue summary"
	ColumnHours           = "Hours"
	ColumnWorkDate        = "Work date"
	ColumnProjectKey      = "Project Key"
	ColumnWorkDescription = "Work Description"
)

// Columns lists the headers read and written for every timesheet format.
func Columns() []string {
	return []string{
		ColumnIssueKey,
		ColumnIssueSummary,
		ColumnHours,
		ColumnWorkDate,
		ColumnProjectKey,
		ColumnWorkDescription,
	}
}

// Record is one row of a timesheet export. WorkDate has no zone in the source
// and is held as UTC.
type Record struct {
	IssueKey        string
	IssueSummary    string
	Hours           float64
	WorkDate        time.Time
	ProjectKey      string
	WorkDescription string
}
