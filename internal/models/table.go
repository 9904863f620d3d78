package models

// Table is a loosely-typed tabular parse result. Cells are raw strings;
// coercion to canonical types happens during sanitization.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Index returns the position of the named column, or -1 when absent.
func (t *Table) Index(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}

	return -1
}

// Rename renames column from to column to. It is a no-op when from is
// absent or to already exists, so alias application cannot clobber a
// column that is already canonical.
func (t *Table) Rename(from, to string) {
	if t.Index(to) >= 0 {
		return
	}

	if i := t.Index(from); i >= 0 {
		t.Columns[i] = to
	}
}

// Cell returns the cell at row index for the given column index, or the
// empty string when the row is shorter than the header.
func (t *Table) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}

	return row[col]
}
