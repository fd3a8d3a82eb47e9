package table

import "fmt"

// Header is the ordered set of column names shared by every row of a table.
// Lookup by name is case-sensitive: "Category" and "category" are distinct
// columns.
type Header struct {
	columns []string
	index   map[string]int
}

// NewHeader builds a header from the column names of the source's first
// record, in order. Duplicate names keep the first occurrence's position.
func NewHeader(columns []string) *Header {
	h := &Header{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, name := range columns {
		if _, exists := h.index[name]; !exists {
			h.index[name] = i
		}
	}
	return h
}

// Columns returns the column names in source order.
func (h *Header) Columns() []string {
	return append([]string(nil), h.columns...)
}

// Index returns the cell position of the named column.
func (h *Header) Index(name string) (int, bool) {
	i, ok := h.index[name]
	return i, ok
}

// Has reports whether the named column exists.
func (h *Header) Has(name string) bool {
	_, ok := h.index[name]
	return ok
}

// Row is one data record: its cells in column order, tied to the table's
// shared header. Columns the aggregation does not use ride along untouched.
type Row struct {
	header *Header
	cells  []string
}

// Field returns the raw cell under the named column.
func (r Row) Field(name string) (string, bool) {
	i, ok := r.header.Index(name)
	if !ok || i >= len(r.cells) {
		return "", false
	}
	return r.cells[i], true
}

// Cells returns the row's raw cells in column order.
func (r Row) Cells() []string {
	return append([]string(nil), r.cells...)
}

// Table is the full in-memory dataset for one run: a header plus the data
// rows in source order. It is built fresh per invocation and never mutated
// after loading.
type Table struct {
	header *Header
	rows   []Row
}

// New creates an empty table with the given column names.
func New(columns []string) *Table {
	return &Table{header: NewHeader(columns)}
}

// Header returns the table's shared header.
func (t *Table) Header() *Header {
	return t.header
}

// Append adds one data row. The cell count must match the header width;
// the CSV reader enforces this before cells ever reach here, so a mismatch
// is a programming error.
func (t *Table) Append(cells []string) error {
	if len(cells) != len(t.header.columns) {
		return fmt.Errorf("row has %d cells, header has %d columns", len(cells), len(t.header.columns))
	}
	t.rows = append(t.rows, Row{header: t.header, cells: append([]string(nil), cells...)})
	return nil
}

// Rows returns the data rows in source order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of data rows (the header is not counted).
func (t *Table) Len() int {
	return len(t.rows)
}
