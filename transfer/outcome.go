package transfer

import (
	"clocktransfer/clockify"
	"clocktransfer/worklog"
)

type Outcome int

const (
	OutcomeSkipped Outcome = iota + 1
	OutcomeDryRun
	OutcomeSuccess
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeDryRun:
		return "dry-run"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// RowResult is the terminal state of one record. Message is the text printed
// after the progress prefix. Entry is set once a time entry was built.
type RowResult struct {
	Record  worklog.Record
	Outcome Outcome
	Message string
	Entry   *clockify.TimeEntry
	Err     error
}

type Result struct {
	Rows      []RowResult
	Failed    []worklog.Record
	Succeeded int
	Skipped   int
	DryRun    int
}

func (r *Result) add(row RowResult) {
	r.Rows = append(r.Rows, row)
	switch row.Outcome {
	case OutcomeSuccess:
		r.Succeeded++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeDryRun:
		r.DryRun++
	case OutcomeFailure:
		r.Failed = append(r.Failed, row.Record)
	}
}
