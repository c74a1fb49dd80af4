package tablediff

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is an ordered sequence of cell strings. Two rows are equal when their
// cells are equal element-wise
type Row []string

// Equal reports whether r and o hold the same cells in the same order
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

// key returns a string that is unique to the cell sequence of r. quoting each
// cell keeps the encoding injective regardless of cell contents
func (r Row) key() string {
	b := &strings.Builder{}
	for _, c := range r {
		b.WriteString(strconv.Quote(c))
		b.WriteByte(',')
	}
	return b.String()
}

func copyRow(cells []string) Row {
	r := make(Row, len(cells))
	copy(r, cells)
	return r
}

// Table is an immutable, ordered sequence of rows of equal width
type Table struct {
	rows []Row
}

// NewTable creates a table from raw rows. rows is copied, later changes to
// the passed-in slices won't affect the table. All rows must have the same
// number of cells
func NewTable(rows [][]string) (*Table, error) {
	t := &Table{rows: make([]Row, len(rows))}
	for i, cells := range rows {
		if i > 0 && len(cells) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedTable, i, len(cells), len(rows[0]))
		}
		t.rows[i] = copyRow(cells)
	}
	return t, nil
}

// MustNewTable is NewTable that panics on error, intended for fixtures
func MustNewTable(rows [][]string) *Table {
	t, err := NewTable(rows)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of rows in the table
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Width is the number of cells in the top row, zero for an empty table
func (t *Table) Width() int {
	if t.Len() == 0 {
		return 0
	}
	return len(t.rows[0])
}

// Rows returns a copy of all rows in the table
func (t *Table) Rows() []Row {
	rows := make([]Row, t.Len())
	for i := range rows {
		rows[i] = copyRow(t.rows[i])
	}
	return rows
}

// Raw returns the table as a fresh slice of string slices
func (t *Table) Raw() [][]string {
	raw := make([][]string, t.Len())
	for i := range raw {
		raw[i] = []string(copyRow(t.rows[i]))
	}
	return raw
}

// Equal reports whether both tables contain the same rows in the same order
func (t *Table) Equal(o *Table) bool {
	if t.Len() != o.Len() {
		return false
	}
	for i := 0; i < t.Len(); i++ {
		if !t.rows[i].Equal(o.rows[i]) {
			return false
		}
	}
	return true
}

// String renders the table as a plain pipe table
func (t *Table) String() string {
	rows := make([]DiffRow, t.Len())
	for i := range rows {
		rows[i] = DiffRow{Row: t.rows[i], Tag: TagNone}
	}
	buf := &strings.Builder{}
	if err := formatPretty(buf, rows, false, nil); err != nil {
		return ""
	}
	return buf.String()
}
