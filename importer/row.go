package importer

import (
	"strings"
)

// Row is one data row keyed by normalized header. RowNumber is the 1-based
// line in the source, so the first data row is 2.
type Row struct {
	RowNumber int
	Values    map[string]string
}

// Get returns the cell of the first matching header exactly as read. Hours and
// Work date are trimmed by their parsers; text cells keep their whitespace.
func (r Row) Get(keys ...string) string {
	for _, key := range keys {
		normalized := normalizeHeader(key)
		if value, ok := r.Values[normalized]; ok {
			return value
		}
	}
	return ""
}

func newRow(rowNumber int, normalizedHeaders []string, cells []string) Row {
	values := make(map[string]string, len(normalizedHeaders))
	for i, header := range normalizedHeaders {
		if i < len(cells) {
			values[header] = cells[i]
		} else {
			values[header] = ""
		}
	}
	return Row{RowNumber: rowNumber, Values: values}
}

func normalizeHeaders(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = normalizeHeader(header)
	}
	return normalized
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}
