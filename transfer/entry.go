package transfer

import (
	"fmt"
	"time"

	"clocktransfer/clockify"
	"clocktransfer/internal/timeutil"
	"clocktransfer/worklog"
)

// BuildTimeEntry shifts start by offset and ends the entry hours later.
func BuildTimeEntry(projectID string, start time.Time, hours float64, description string, offset time.Duration) (clockify.TimeEntry, error) {
	duration, err := timeutil.HoursToDuration(hours)
	if err != nil {
		return clockify.TimeEntry{}, fmt.Errorf("build time entry: %w", err)
	}

	shifted := start.Add(offset).UTC()
	return clockify.TimeEntry{
		Start:       shifted,
		End:         shifted.Add(duration),
		ProjectID:   projectID,
		Description: description,
	}, nil
}

// EntryDescription composes "{issue key}: {work description}".
func EntryDescription(record worklog.Record) string {
	return fmt.Sprintf("%s: %s", record.IssueKey, record.WorkDescription)
}
