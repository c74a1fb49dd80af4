package tablediff

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnCountMismatch indicates two tables can't be compared because
	// their widths differ
	ErrColumnCountMismatch = errors.New("tables must have equal number of columns")
	// ErrRaggedTable indicates rows of differing widths within one table
	ErrRaggedTable = errors.New("table rows must have equal number of cells")
)

// CheckColumns returns an error wrapping ErrColumnCountMismatch if from and to
// differ in width. The check is skipped when to has no rows
func CheckColumns(from, to *Table) error {
	if from.Width() != to.Width() && to.Len() != 0 {
		return fmt.Errorf("%w:\n%s\n%s", ErrColumnCountMismatch, from, to)
	}
	return nil
}

// MismatchError is returned by Compare & CompareUnordered when tables differ.
// It carries both tables and the diff so callers can report precisely what
// changed
type MismatchError struct {
	From *Table
	To   *Table
	Diff *Diff
}

// Error renders the diff as an annotated table
func (e *MismatchError) Error() string {
	str, err := FormatPrettyString(e.Diff, false)
	if err != nil {
		return "tables are different"
	}
	return "tables are different (- expected, + actual):\n" + str
}
