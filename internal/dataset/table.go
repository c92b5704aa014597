package dataset

// Row holds one record keyed by column name. Missing cells are absent from
// the map and read back as empty strings.
type Row map[string]string

// Table is an ordered set of columns plus rows. It is the in-memory shape of
// one message export file, and of the combined artifact.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// SetColumn assigns the same value to the named column in every row, adding
// the column if it does not exist yet. Used to stamp provenance onto a file's
// rows before concatenation.
func (t *Table) SetColumn(name, value string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
	for _, row := range t.Rows {
		row[name] = value
	}
}

// Record returns row i as a string slice in column order, suitable for a CSV
// writer. Cells missing from the row come back empty.
func (t *Table) Record(i int) []string {
	record := make([]string, len(t.Columns))
	for j, col := range t.Columns {
		record[j] = t.Rows[i][col]
	}
	return record
}

// Concat combines tables into one with column-union semantics: the result's
// columns are the union of all input columns in first-seen order, and rows
// keep their original order. Cells for columns a source table lacks are left
// missing and serialize as empty strings.
func Concat(tables []*Table) *Table {
	combined := &Table{}
	seen := make(map[string]bool)

	for _, t := range tables {
		for _, col := range t.Columns {
			if !seen[col] {
				seen[col] = true
				combined.Columns = append(combined.Columns, col)
			}
		}
		combined.Rows = append(combined.Rows, t.Rows...)
	}

	return combined
}
