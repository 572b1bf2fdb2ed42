package output

import (
	"fmt"
	"os"

	"clocktransfer/worklog"

	"github.com/xuri/excelize/v2"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(target string, records []worklog.Record) error {
	if target == StderrTarget {
		return fmt.Errorf("excel output needs a file target")
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, worklog.Columns())
	for _, record := range records {
		rows = append(rows, recordValues(record))
	}

	for i, values := range rows {
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			if err := file.SetCellStr(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	// SaveAs rejects names without a workbook extension, and retry targets
	// end in "-unprocessed-issues".
	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create excel output %s: %w", target, err)
	}
	if err := file.Write(out); err != nil {
		out.Close()
		return fmt.Errorf("write excel output %s: %w", target, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close excel output %s: %w", target, err)
	}
	return nil
}
