package transfer

import (
	"clocktransfer/config"
	"clocktransfer/worklog"
)

// UnprocessedRecords selects the rows to write for a later retry. Nothing is
// returned when no row failed. Mode "all" returns the complete input, which
// is what earlier versions of the tool wrote; any other mode returns only the
// failed rows.
func UnprocessedRecords(records []worklog.Record, result *Result, mode string) []worklog.Record {
	if result == nil || len(result.Failed) == 0 {
		return nil
	}
	if mode == config.UnprocessedAll {
		return append([]worklog.Record(nil), records...)
	}
	return append([]worklog.Record(nil), result.Failed...)
}
