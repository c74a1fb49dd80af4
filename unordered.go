package tablediff

import (
	"context"
)

// DiffUnordered computes a diff that ignores row order, comparing tables as
// multisets of rows. Rows of from are tagged unchanged or delete in from's
// order, followed by unmatched rows of to tagged insert in to's order
func (td *TableDiff) DiffUnordered(ctx context.Context, from, to *Table, opts ...DiffOption) (*Diff, error) {
	if err := CheckColumns(from, to); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := td.config(opts)
	fromRows, toRows := from.Rows(), to.Rows()

	// remaining counts unmatched occurrences of each row in to. present
	// records membership in the original, unconsumed to table
	remaining := make(map[string]int, len(toRows))
	present := make(map[string]bool, len(toRows))
	for _, r := range toRows {
		k := r.key()
		remaining[k]++
		present[k] = true
	}

	// matched counts occurrences of each row in to consumed by a from row.
	// consumption removes the earliest occurrences first
	matched := make(map[string]int)
	d := &Diff{Rows: make([]DiffRow, 0, len(fromRows))}
	for _, r := range fromRows {
		k := r.key()
		found := remaining[k] > 0
		if cfg.LegacyMembership {
			found = present[k]
		}
		if !found {
			d.add(r, TagDelete)
			d.Different = true
			continue
		}

		d.add(r, TagNone)
		if remaining[k] > 0 {
			remaining[k]--
			matched[k]++
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, r := range toRows {
		k := r.key()
		if matched[k] > 0 {
			matched[k]--
			continue
		}
		d.add(r, TagInsert)
		d.Different = true
	}

	if cfg.Stats != nil {
		cfg.Stats.calc(from, to, d)
	}
	return d, nil
}

// CompareUnordered returns nil if from and to hold the same rows regardless
// of order, otherwise a *MismatchError describing the difference
func (td *TableDiff) CompareUnordered(ctx context.Context, from, to *Table, opts ...DiffOption) error {
	d, err := td.DiffUnordered(ctx, from, to, opts...)
	if err != nil {
		return err
	}
	if d.Different {
		return &MismatchError{From: from, To: to, Diff: d}
	}
	return nil
}
