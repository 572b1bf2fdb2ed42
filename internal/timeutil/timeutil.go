package timeutil

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// WorkDateLayout is the fixed "Work date" column format of timesheet exports.
const WorkDateLayout = "2006-01-02 15:04"

var ErrInvalidDuration = errors.New("invalid duration")

// ParseWorkDate parses a naive work date. The value carries no zone and is
// returned as UTC.
func ParseWorkDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty work date")
	}
	parsed, err := time.Parse(WorkDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported work date format %q (expected YYYY-MM-DD HH:MM)", value)
	}
	return parsed, nil
}

func FormatWorkDate(value time.Time) string {
	return value.UTC().Format(WorkDateLayout)
}

// HoursToDuration converts fractional hours into an exact duration, rounded to
// the nearest nanosecond.
func HoursToDuration(hours float64) (time.Duration, error) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, fmt.Errorf("%w: hours %v", ErrInvalidDuration, hours)
	}
	if hours < 0 {
		return 0, fmt.Errorf("%w: hours must not be negative (%v)", ErrInvalidDuration, hours)
	}
	nanos := math.Round(hours * float64(time.Hour))
	if nanos >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v hours overflows", ErrInvalidDuration, hours)
	}
	return time.Duration(nanos), nil
}
