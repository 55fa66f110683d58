package dataset

import (
	"fmt"

	"github.com/citybike-labs/citybike/algos"
)

// Table is a raw CSV table: a header row and string cells. Empty cells are
// treated as missing values.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnIndex returns the index of the named column, or an error naming the
// table when the column does not exist.
func (t *Table) ColumnIndex(name string) (int, error) {
	idx, ok := algos.LinearSearchOrdered(t.Columns, name).Get()
	if !ok {
		return 0, fmt.Errorf("table %s: no column %q", t.Name, name)
	}

	return idx, nil
}

// Cell returns the value at the given row and column index, with missing
// cells (and short rows) reported as empty strings.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}

	return t.Rows[row][col]
}

// MissingCounts returns, per column, the number of rows whose cell is empty.
func (t *Table) MissingCounts() map[string]int {
	counts := make(map[string]int, len(t.Columns))

	for col, name := range t.Columns {
		missing := 0

		for row := range t.Rows {
			if t.Cell(row, col) == "" {
				missing++
			}
		}

		counts[name] = missing
	}

	return counts
}
