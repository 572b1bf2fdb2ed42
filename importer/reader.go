package importer

import "fmt"

const (
	FormatCSV    = "csv"
	FormatExcel  = "excel"
	FormatSQLite = "sqlite"
)

// Table is the raw content of one timesheet source before column parsing.
type Table struct {
	Headers []string
	Rows    []Row
}

type Reader interface {
	Read(path string) (*Table, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch NormalizeFormat(format) {
	case FormatCSV:
		return &CSVReader{}, nil
	case FormatExcel:
		return &ExcelReader{}, nil
	case FormatSQLite:
		return &SQLiteReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// NormalizeFormat maps format aliases and file extensions to a format name.
func NormalizeFormat(format string) string {
	switch normalizeHeader(format) {
	case "csv":
		return FormatCSV
	case "excel", "xlsx", "xlsm", "xls":
		return FormatExcel
	case "sqlite", "sqlite3", "db":
		return FormatSQLite
	default:
		return normalizeHeader(format)
	}
}
