package tabular

import (
	"strings"
)

// Table is an in-memory CSV file: an ordered header plus data rows.
// Cell access goes through Row.Lookup, which makes the present/absent
// distinction explicit instead of relying on a null sentinel.
type Table struct {
	Columns []string
	Rows    []Row

	// SkippedRows counts malformed records dropped while reading.
	SkippedRows int

	index map[string]int
}

type Row struct {
	cells []string
	index map[string]int
}

func NewTable(columns []string) *Table {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return &Table{Columns: columns, index: idx}
}

func (t *Table) Append(cells []string) {
	t.Rows = append(t.Rows, Row{cells: cells, index: t.index})
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Lookup returns the raw cell value for the named column. The second
// result is false when the column is not part of the header or the cell
// is blank; callers never see a sentinel value.
func (r Row) Lookup(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok || i >= len(r.cells) {
		return "", false
	}
	v := r.cells[i]
	if strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Get returns the trimmed cell value, or def when the cell is absent.
func (r Row) Get(name, def string) string {
	v, ok := r.Lookup(name)
	if !ok {
		return def
	}
	return strings.TrimSpace(v)
}
