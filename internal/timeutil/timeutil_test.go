package timeutil

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParseWorkDate(t *testing.T) {
	t.Parallel()

	got, err := ParseWorkDate(" 2024-01-01 09:00 ")
	if err != nil {
		t.Fatalf("parse work date: %v", err)
	}
	want := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("unexpected work date: want %v, got %v", want, got)
	}
}

func TestParseWorkDate_RejectsOtherLayouts(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "01.01.2024 09:00", "2024-01-01", "2024-01-01T09:00:00Z"} {
		if _, err := ParseWorkDate(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestFormatWorkDate_RoundTrip(t *testing.T) {
	t.Parallel()

	value := time.Date(2024, 2, 29, 17, 45, 0, 0, time.UTC)
	parsed, err := ParseWorkDate(FormatWorkDate(value))
	if err != nil {
		t.Fatalf("parse formatted date: %v", err)
	}
	if !parsed.Equal(value) {
		t.Fatalf("round trip mismatch: want %v, got %v", value, parsed)
	}
}

func TestHoursToDuration_Fractional(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hours float64
		want  time.Duration
	}{
		{hours: 0, want: 0},
		{hours: 2.5, want: 2*time.Hour + 30*time.Minute},
		{hours: 0.25, want: 15 * time.Minute},
		{hours: 1.0 / 3.0, want: 20 * time.Minute},
	}
	for _, tc := range cases {
		got, err := HoursToDuration(tc.hours)
		if err != nil {
			t.Fatalf("hours %v: %v", tc.hours, err)
		}
		if got != tc.want {
			t.Fatalf("hours %v: want %v, got %v", tc.hours, tc.want, got)
		}
	}
}

func TestHoursToDuration_Invalid(t *testing.T) {
	t.Parallel()

	for _, hours := range []float64{-1, math.NaN(), math.Inf(1), 1e12} {
		_, err := HoursToDuration(hours)
		if !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("hours %v: expected ErrInvalidDuration, got %v", hours, err)
		}
	}
}
