package transfer

import (
	"errors"
	"math"
	"testing"
	"time"

	"clocktransfer/internal/timeutil"
	"clocktransfer/worklog"
)

func TestBuildTimeEntry_AppliesOffsetAndDuration(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 31, 22, 30, 0, 0, time.UTC)
	entry, err := BuildTimeEntry("p-1", start, 1.75, "X-1: work", 4*time.Hour)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	wantStart := time.Date(2024, 4, 1, 2, 30, 0, 0, time.UTC)
	if !entry.Start.Equal(wantStart) {
		t.Fatalf("start=%s, want %s", entry.Start, wantStart)
	}
	if got := entry.End.Sub(entry.Start); got != 105*time.Minute {
		t.Fatalf("duration=%s", got)
	}
	if entry.Start.Location() != time.UTC {
		t.Fatalf("start should be UTC, got %s", entry.Start.Location())
	}
}

func TestBuildTimeEntry_ZeroHours(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	entry, err := BuildTimeEntry("p-1", start, 0, "", 0)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !entry.End.Equal(entry.Start) {
		t.Fatalf("expected zero length entry, got %s..%s", entry.Start, entry.End)
	}
}

func TestBuildTimeEntry_RejectsInvalidHours(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for _, hours := range []float64{-0.5, math.NaN(), math.Inf(1), 1e12} {
		if _, err := BuildTimeEntry("p-1", start, hours, "", 0); !errors.Is(err, timeutil.ErrInvalidDuration) {
			t.Fatalf("hours=%v: expected ErrInvalidDuration, got %v", hours, err)
		}
	}
}

func TestEntryDescription(t *testing.T) {
	t.Parallel()

	got := EntryDescription(worklog.Record{IssueKey: "ABC-7", WorkDescription: "review"})
	if got != "ABC-7: review" {
		t.Fatalf("unexpected description: %q", got)
	}
	if got := EntryDescription(worklog.Record{IssueKey: "ABC-7"}); got != "ABC-7: " {
		t.Fatalf("unexpected empty description: %q", got)
	}
}
