package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type ExcelReader struct{}

func (r *ExcelReader) Read(path string) (*Table, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	headers := rows[0]
	normalizedHeaders := normalizeHeaders(headers)

	table := &Table{Headers: headers, Rows: make([]Row, 0, len(rows)-1)}
	for i, cells := range rows[1:] {
		if isBlankRow(cells) {
			continue
		}
		table.Rows = append(table.Rows, newRow(i+2, normalizedHeaders, cells))
	}

	return table, nil
}

func isBlankRow(cells []string) bool {
	for _, cell := range cells {
		if cell != "" {
			return false
		}
	}
	return true
}
