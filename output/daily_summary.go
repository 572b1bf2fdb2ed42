package output

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"clocktransfer/clockify"
	"clocktransfer/importer"

	"github.com/xuri/excelize/v2"
)

// DailySummary aggregates the time entries of one UTC day.
type DailySummary struct {
	Date          string
	StartDateTime time.Time
	EndDateTime   time.Time
	BookedHours   float64
	GapHours      float64
	OverlapHours  float64
	EntryCount    int
}

type interval struct {
	start time.Time
	end   time.Time
}

func BuildDailySummaries(entries []clockify.TimeEntry) []DailySummary {
	if len(entries) == 0 {
		return []DailySummary{}
	}

	byDay := make(map[string][]clockify.TimeEntry)
	for _, entry := range entries {
		day := entry.Start.UTC().Format("2006-01-02")
		byDay[day] = append(byDay[day], entry)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	summaries := make([]DailySummary, 0, len(days))
	for _, day := range days {
		summaries = append(summaries, summarizeDay(day, byDay[day]))
	}
	return summaries
}

func summarizeDay(day string, entries []clockify.TimeEntry) DailySummary {
	sorted := append([]clockify.TimeEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	start := sorted[0].Start
	end := sorted[0].End
	booked := time.Duration(0)
	intervals := make([]interval, 0, len(sorted))
	for _, entry := range sorted {
		if entry.End.After(end) {
			end = entry.End
		}
		if entry.End.After(entry.Start) {
			booked += entry.End.Sub(entry.Start)
		}
		intervals = append(intervals, interval{start: entry.Start, end: entry.End})
	}

	covered := mergedCoverage(intervals)
	gap := end.Sub(start) - covered
	if gap < 0 {
		gap = 0
	}

	return DailySummary{
		Date:          day,
		StartDateTime: start.UTC(),
		EndDateTime:   end.UTC(),
		BookedHours:   roundHours(booked.Hours()),
		GapHours:      roundHours(gap.Hours()),
		OverlapHours:  roundHours((booked - covered).Hours()),
		EntryCount:    len(sorted),
	}
}

// mergedCoverage expects intervals sorted by start.
func mergedCoverage(intervals []interval) time.Duration {
	if len(intervals) == 0 {
		return 0
	}

	currentStart := intervals[0].start
	currentEnd := intervals[0].end
	covered := time.Duration(0)

	for _, candidate := range intervals[1:] {
		if candidate.start.After(currentEnd) {
			covered += currentEnd.Sub(currentStart)
			currentStart = candidate.start
			currentEnd = candidate.end
			continue
		}
		if candidate.end.After(currentEnd) {
			currentEnd = candidate.end
		}
	}

	covered += currentEnd.Sub(currentStart)
	return covered
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}

func summaryColumns() []string {
	return []string{"Date", "StartTime", "EndTime", "BookedHours", "GapHours", "OverlapHours", "EntryCount"}
}

func summaryValues(summary DailySummary) []string {
	return []string{
		summary.Date,
		summary.StartDateTime.Format("15:04"),
		summary.EndDateTime.Format("15:04"),
		fmt.Sprintf("%.2f", summary.BookedHours),
		fmt.Sprintf("%.2f", summary.GapHours),
		fmt.Sprintf("%.2f", summary.OverlapHours),
		strconv.Itoa(summary.EntryCount),
	}
}

func WriteDailySummaries(path, format string, summaries []DailySummary) error {
	switch importer.NormalizeFormat(format) {
	case importer.FormatCSV:
		return writeDailySummariesCSV(path, summaries)
	case importer.FormatExcel:
		return writeDailySummariesExcel(path, summaries)
	default:
		return fmt.Errorf("unsupported output format for daily summaries: %s", format)
	}
}

func writeDailySummariesCSV(path string, summaries []DailySummary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(summaryColumns()); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, summary := range summaries {
		if err := writer.Write(summaryValues(summary)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}
	return nil
}

func writeDailySummariesExcel(path string, summaries []DailySummary) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for col, header := range summaryColumns() {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, summary := range summaries {
		row := i + 2
		values := []any{
			summary.Date,
			summary.StartDateTime.Format("15:04"),
			summary.EndDateTime.Format("15:04"),
			summary.BookedHours,
			summary.GapHours,
			summary.OverlapHours,
			summary.EntryCount,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}
	return nil
}
