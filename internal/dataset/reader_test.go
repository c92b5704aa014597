package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeCSV(t, "Message Date,Text,Type\n2024-01-02 10:00:00,hello,Outgoing\n2024-01-03 11:00:00,hi,Incoming\n")

	table, err := ReadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Message Date", "Text", "Type"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "hello", table.Rows[0]["Text"])
	assert.Equal(t, "Incoming", table.Rows[1]["Type"])
}

func TestReadCSV_BOMHeader(t *testing.T) {
	path := writeCSV(t, "\uFEFF"+"Text,Type\nhi,Outgoing\n")

	table, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Text", "Type"}, table.Columns)
}

func TestReadCSV_ShortRecordsPadded(t *testing.T) {
	path := writeCSV(t, "A,B,C\n1,2\n")

	table, err := ReadCSV(path)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "", table.Rows[0]["C"])
}

func TestReadCSV_Empty(t *testing.T) {
	path := writeCSV(t, "")

	_, err := ReadCSV(path)
	assert.Error(t, err)
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReadHeader(t *testing.T) {
	path := writeCSV(t, "Message Date,Text,Type\n2024-01-02,hello,Outgoing\n")

	header, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Message Date", "Text", "Type"}, header)
}

func TestReadXLSX(t *testing.T) {
	path := writeXLSX(t, [][]interface{}{
		{"Message Date", "Text", "Type"},
		{"2024-01-02 10:00:00", "hello 👋", "Outgoing"},
	})

	table, err := ReadXLSX(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Message Date", "Text", "Type"}, table.Columns)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "hello 👋", table.Rows[0]["Text"])
}

func TestReadFile_Dispatch(t *testing.T) {
	csvPath := writeCSV(t, "A\n1\n")
	table, err := ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	xlsxPath := writeXLSX(t, [][]interface{}{{"A"}, {"1"}})
	table, err = ReadFile(xlsxPath)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	_, err = ReadFile("data.parquet")
	assert.Error(t, err)
}
