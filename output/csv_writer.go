package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"clocktransfer/worklog"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(target string, records []worklog.Record) error {
	if target == StderrTarget {
		return w.WriteTo(os.Stderr, records)
	}

	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", target, err)
	}
	if err := w.WriteTo(file, records); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close csv output %s: %w", target, err)
	}
	return nil
}

func (w *CSVWriter) WriteTo(out io.Writer, records []worklog.Record) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(worklog.Columns()); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(recordValues(record)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}
	return nil
}
