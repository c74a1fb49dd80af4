package tablediff

import (
	"fmt"
)

// Patch applies a diff to a table, returning the table the diff describes as
// the "to" side. Rows tagged unchanged or delete must match the rows of from,
// in order
func Patch(from *Table, d *Diff) (*Table, error) {
	if d == nil {
		return nil, fmt.Errorf("diff is required")
	}

	var (
		pos    int
		result [][]string
	)
	for i, dr := range d.Rows {
		switch dr.Tag {
		case TagNone, TagDelete:
			if err := consumeRow(from, pos, dr.Row); err != nil {
				return nil, fmt.Errorf("patch %d: %w", i, err)
			}
			pos++
			if dr.Tag == TagNone {
				result = append(result, dr.Row)
			}
		case TagInsert:
			result = append(result, dr.Row)
		default:
			return nil, fmt.Errorf("patch %d: unknown tag %q", i, dr.Tag)
		}
	}

	if pos != from.Len() {
		return nil, fmt.Errorf("diff covers %d rows, table has %d", pos, from.Len())
	}
	return NewTable(result)
}

func consumeRow(from *Table, pos int, r Row) error {
	if pos >= from.Len() {
		return fmt.Errorf("row %d is out of range", pos)
	}
	if !from.rows[pos].Equal(r) {
		return fmt.Errorf("row %d mismatch. want: %v. got: %v", pos, from.rows[pos], r)
	}
	return nil
}
