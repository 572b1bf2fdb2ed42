package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"clocktransfer/worklog"
)

// StdinSource is the source name that selects standard input.
const StdinSource = "-"

// UnprocessedSuffix is appended to a source name to name its retry file.
const UnprocessedSuffix = "-unprocessed-issues"

// Read loads all work records from source. Standard input is always CSV.
// Either every row parses or no records are returned.
func Read(source, format string) ([]worklog.Record, error) {
	if source == StdinSource {
		if strings.TrimSpace(format) != "" && NormalizeFormat(format) != FormatCSV {
			return nil, fmt.Errorf("standard input only supports csv, got format %q", format)
		}
		return ReadFrom(os.Stdin, "stdin")
	}

	sourceFormat, err := InferFormat(source, format)
	if err != nil {
		return nil, err
	}
	reader, err := ReaderForFormat(sourceFormat)
	if err != nil {
		return nil, err
	}

	table, err := reader.Read(source)
	if err != nil {
		return nil, err
	}
	return ToRecords(source, table)
}

// ReadFrom parses CSV records from input; name labels errors.
func ReadFrom(input io.Reader, name string) ([]worklog.Record, error) {
	table, err := (&CSVReader{}).ReadFrom(input)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return ToRecords(name, table)
}

// InferFormat returns format when given, otherwise derives it from the
// extension of path. Retry file suffixes are ignored, so
// "export.xlsx-unprocessed-issues" is Excel. Standard input resolves to CSV.
func InferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		normalized := NormalizeFormat(format)
		switch normalized {
		case FormatCSV, FormatExcel, FormatSQLite:
			return normalized, nil
		default:
			return "", fmt.Errorf("unsupported input format: %s", format)
		}
	}
	if path == StdinSource {
		return FormatCSV, nil
	}

	base := path
	for strings.HasSuffix(base, UnprocessedSuffix) {
		base = strings.TrimSuffix(base, UnprocessedSuffix)
	}
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	switch extension {
	case "csv":
		return FormatCSV, nil
	case "xlsx", "xlsm", "xls":
		return FormatExcel, nil
	case "db", "sqlite", "sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s (set --format csv|excel|sqlite)", path)
	}
}
