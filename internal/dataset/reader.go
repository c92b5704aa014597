package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadFile parses a message export file into a Table, dispatching on the
// file extension.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// ReadHeader reads only the column names of a file. The analyzer uses this to
// validate required columns before committing to a full parse.
func ReadHeader(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1
		header, err := reader.Read()
		if err == io.EOF {
			return nil, fmt.Errorf("file %s is empty", path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
		}
		return normalizeHeader(header), nil
	case ".xlsx":
		table, err := ReadXLSX(path)
		if err != nil {
			return nil, err
		}
		return table.Columns, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// ReadCSV parses a CSV file into a Table. The first record is the header.
// Short records are padded with empty cells; surplus cells are dropped.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("file %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	columns := normalizeHeader(header)

	table := New(columns...)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record in %s: %w", path, err)
		}
		table.Rows = append(table.Rows, recordToRow(columns, record))
	}

	return table, nil
}

// ReadXLSX parses the first sheet of an Excel workbook into a Table.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("file %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}

	columns := normalizeHeader(rows[0])
	table := New(columns...)
	for _, record := range rows[1:] {
		table.Rows = append(table.Rows, recordToRow(columns, record))
	}

	return table, nil
}

// recordToRow maps a record onto the header, padding short records.
func recordToRow(columns []string, record []string) Row {
	row := make(Row, len(columns))
	for i, col := range columns {
		if i < len(record) {
			row[col] = record[i]
		} else {
			row[col] = ""
		}
	}
	return row
}

// normalizeHeader trims a UTF-8 BOM from the first column name and whitespace
// from all of them.
func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		columns[i] = strings.TrimSpace(h)
	}
	return columns
}
