package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVReader reads comma separated timesheet exports. A UTF-8 or UTF-16 byte
// order mark is honoured and stripped; input without one is read as UTF-8.
type CSVReader struct{}

func (r *CSVReader) Read(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	return r.ReadFrom(file)
}

func (r *CSVReader) ReadFrom(input io.Reader) (*Table, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(input, decoder))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	normalizedHeaders := normalizeHeaders(headers)
	table := &Table{Headers: headers, Rows: make([]Row, 0, 128)}
	rowNumber := 1
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", rowNumber+1, err)
		}

		table.Rows = append(table.Rows, newRow(rowNumber+1, normalizedHeaders, cells))
		rowNumber++
	}

	return table, nil
}
