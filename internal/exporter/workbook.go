package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"emojicli/internal/analysis"
)

// WriteStatsWorkbook writes the analysis results to an Excel workbook with
// one sheet per report view.
func WriteStatsWorkbook(path string, result *analysis.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Metric", "Value"},
		{"Total emojis used", result.Stats.TotalEmojis},
		{"Unique emojis used", result.Stats.UniqueEmojis},
		{"Messages containing emojis", result.Stats.MessagesWithEmojis},
		{"Messages analyzed", result.Stats.TotalMessages},
		{"Percentage of messages with emojis", result.Stats.PercentWithEmojis},
	}
	if err := writeSheet(f, "Summary", summary); err != nil {
		return err
	}

	topRows := [][]interface{}{{"Emoji", "Count"}}
	for _, e := range result.TopEmojis {
		topRows = append(topRows, []interface{}{e.Char, e.Count})
	}
	if err := addSheet(f, "Top Emojis", topRows); err != nil {
		return err
	}

	for _, view := range []struct {
		name    string
		buckets []analysis.BucketCount
	}{
		{"Hourly", result.Hourly},
		{"Weekday", result.Weekday},
		{"Monthly", result.Monthly},
		{"Categories", result.Categories},
	} {
		rows := [][]interface{}{{view.name, "Count"}}
		for _, b := range view.buckets {
			rows = append(rows, []interface{}{b.Label, b.Count})
		}
		if err := addSheet(f, view.name, rows); err != nil {
			return err
		}
	}

	dailyRows := [][]interface{}{{"Date", "Count"}}
	for _, d := range result.Daily {
		dailyRows = append(dailyRows, []interface{}{d.Date.Format("2006-01-02"), d.Count})
	}
	if err := addSheet(f, "Daily", dailyRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func addSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	return writeSheet(f, name, rows)
}

func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %s: %w", i+1, name, err)
		}
	}
	return nil
}
