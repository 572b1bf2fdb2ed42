package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseHours accepts a decimal point or a single decimal comma ("2,5").
// Digit grouping such as "1,234.5" or "1.234,5" is rejected.
func parseHours(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, fmt.Errorf("empty hours value")
	}
	if strings.Contains(cleaned, ",") {
		if strings.Contains(cleaned, ".") || strings.Count(cleaned, ",") > 1 {
			return 0, fmt.Errorf("parse hours %q: mixed or repeated decimal separators", raw)
		}
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	hours, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, fmt.Errorf("parse hours %q: not a number", raw)
	}
	if hours < 0 {
		return 0, fmt.Errorf("hours must not be negative")
	}
	return hours, nil
}

// FormatHours renders hours in the shortest form that parses back to the same value.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
