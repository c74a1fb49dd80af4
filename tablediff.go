package tablediff

import (
	"context"
)

// Config are any possible configuration parameters for calculating diffs
type Config struct {
	// EditScripter computes the edit script ordered diffs are built from.
	// nil means LCS
	EditScripter EditScripter
	// If true, unordered diffs test "from" rows for membership against every
	// row of "to", including rows already matched by an earlier "from" row.
	// Duplicate rows may then be reported as unchanged even when "to" holds
	// fewer copies of them
	LegacyMembership bool
	// Provide a non-nil stats pointer & diff will populate it with data from
	// the diff process
	Stats *Stats
}

// DiffOption is a function that adjust a config, zero or more DiffOptions
// can be passed to New or to a single diff call
type DiffOption func(cfg *Config)

// OptionSetStats will set the passed-in stats pointer when Diff is called
func OptionSetStats(st *Stats) DiffOption {
	return func(cfg *Config) {
		cfg.Stats = st
	}
}

// OptionEditScripter sets the edit script algorithm for ordered diffs
func OptionEditScripter(es EditScripter) DiffOption {
	return func(cfg *Config) {
		cfg.EditScripter = es
	}
}

// OptionLegacyMembership switches unordered diffs to membership testing
// against the unconsumed "to" table
func OptionLegacyMembership() DiffOption {
	return func(cfg *Config) {
		cfg.LegacyMembership = true
	}
}

// TableDiff is a configured table differ. A TableDiff holds no state between
// calls & is safe for concurrent use
type TableDiff struct {
	cfg Config
}

// New creates a TableDiff with the default configuration, modified by any
// provided options
func New(opts ...DiffOption) *TableDiff {
	td := &TableDiff{}
	for _, opt := range opts {
		opt(&td.cfg)
	}
	return td
}

// config returns a copy of the differ configuration with per-call options
// applied
func (td *TableDiff) config(opts []DiffOption) Config {
	cfg := td.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.EditScripter == nil {
		cfg.EditScripter = LCS
	}
	return cfg
}

// Diff computes a position-sensitive diff between two tables. Every row of
// the returned diff is tagged: removing rows tagged insert yields the rows of
// from, removing rows tagged delete yields the rows of to
func (td *TableDiff) Diff(ctx context.Context, from, to *Table, opts ...DiffOption) (*Diff, error) {
	if err := CheckColumns(from, to); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := td.config(opts)
	fromRows, toRows := from.Rows(), to.Rows()
	deltas := cfg.EditScripter.EditScript(fromRows, toRows)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := linearize(fromRows, deltas)
	d.Different = len(deltas) > 0
	if cfg.Stats != nil {
		cfg.Stats.calc(from, to, d)
	}
	return d, nil
}

// Compare returns nil if from and to hold equal rows in equal order,
// otherwise a *MismatchError describing the difference
func (td *TableDiff) Compare(ctx context.Context, from, to *Table, opts ...DiffOption) error {
	d, err := td.Diff(ctx, from, to, opts...)
	if err != nil {
		return err
	}
	if d.Different {
		return &MismatchError{From: from, To: to, Diff: d}
	}
	return nil
}

// linearize walks the from rows, splicing in the rows of any delta that
// starts at the current position. At most one delta starts at a position
func linearize(from []Row, deltas []*Delta) *Diff {
	byPosition := make(map[int]*Delta, len(deltas))
	for _, dlt := range deltas {
		byPosition[dlt.Original.Position] = dlt
	}

	d := &Diff{Rows: make([]DiffRow, 0, len(from))}
	for i := 0; i < len(from); i++ {
		dlt, ok := byPosition[i]
		if !ok {
			d.add(from[i], TagNone)
			continue
		}

		d.addDelta(dlt)
		switch dlt.Type {
		case DeltaChange, DeltaDelete:
			// skip rows consumed by the delta
			i += len(dlt.Original.Rows) - 1
		case DeltaInsert:
			d.add(from[i], TagNone)
		}
	}

	// rows appended after the last original row
	if dlt, ok := byPosition[len(from)]; ok {
		d.addDelta(dlt)
	}
	return d
}

// addDelta adds the original rows of a delta as deletes, followed by revised
// rows as inserts
func (d *Diff) addDelta(dlt *Delta) {
	for _, r := range dlt.Original.Rows {
		d.add(r, TagDelete)
	}
	for _, r := range dlt.Revised.Rows {
		d.add(r, TagInsert)
	}
}
