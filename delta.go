package tablediff

import (
	"encoding/json"
	"fmt"
)

// DeltaType defines the kind of edit an edit script Delta describes
type DeltaType uint8

const (
	// DeltaChange replaces a run of original rows with a run of revised rows
	DeltaChange DeltaType = iota
	// DeltaDelete removes a run of original rows
	DeltaDelete
	// DeltaInsert adds a run of revised rows before an original position
	DeltaInsert
)

func (dt DeltaType) String() string {
	switch dt {
	case DeltaChange:
		return "change"
	case DeltaDelete:
		return "delete"
	case DeltaInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Chunk is a contiguous run of rows starting at Position within one side of
// a comparison
type Chunk struct {
	Position int
	Rows     []Row
}

// Delta is a single edit script entry: the Original rows of the "from" side
// are replaced by the Revised rows of the "to" side
type Delta struct {
	Type     DeltaType
	Original Chunk
	Revised  Chunk
}

// newDelta creates a delta from half-open ranges of from & to, inferring the
// delta type from which side is empty
func newDelta(from, to []Row, i1, i2, j1, j2 int) *Delta {
	d := &Delta{
		Type:     DeltaChange,
		Original: Chunk{Position: i1, Rows: from[i1:i2]},
		Revised:  Chunk{Position: j1, Rows: to[j1:j2]},
	}
	switch {
	case i1 == i2:
		d.Type = DeltaInsert
	case j1 == j2:
		d.Type = DeltaDelete
	}
	return d
}

// Tag classifies a single row of a diff
type Tag string

const (
	// TagNone marks a row present in both tables
	TagNone = Tag(" ")
	// TagInsert marks a row present only in the "to" table
	TagInsert = Tag("+")
	// TagDelete marks a row present only in the "from" table
	TagDelete = Tag("-")
)

func (t Tag) valid() bool {
	return t == TagNone || t == TagInsert || t == TagDelete
}

// DiffRow pairs a row with its classification
type DiffRow struct {
	Row Row
	Tag Tag
}

// MarshalJSON encodes a row in the compact form [tag, [cells...]]
func (dr DiffRow) MarshalJSON() ([]byte, error) {
	cells := dr.Row
	if cells == nil {
		cells = Row{}
	}
	return json.Marshal([]interface{}{dr.Tag, cells})
}

// UnmarshalJSON decodes the compact [tag, [cells...]] form
func (dr *DiffRow) UnmarshalJSON(data []byte) error {
	var v []json.RawMessage
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("diff row: expected 2 elements, got %d", len(v))
	}
	var tag string
	if err := json.Unmarshal(v[0], &tag); err != nil {
		return fmt.Errorf("diff row tag: %w", err)
	}
	if !Tag(tag).valid() {
		return fmt.Errorf("diff row: invalid tag %q", tag)
	}
	var cells []string
	if err := json.Unmarshal(v[1], &cells); err != nil {
		return fmt.Errorf("diff row cells: %w", err)
	}
	dr.Tag = Tag(tag)
	dr.Row = copyRow(cells)
	return nil
}

// Diff is the outcome of comparing two tables: an ordered sequence of tagged
// rows, and whether any row differs
type Diff struct {
	Rows      []DiffRow
	Different bool
}

// MarshalJSON encodes a diff as its list of rows
func (d *Diff) MarshalJSON() ([]byte, error) {
	rows := d.Rows
	if rows == nil {
		rows = []DiffRow{}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes a list of rows, Different is derived from the tags
func (d *Diff) UnmarshalJSON(data []byte) error {
	var rows []DiffRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	d.Rows = rows
	d.Different = false
	for _, r := range rows {
		if r.Tag != TagNone {
			d.Different = true
			break
		}
	}
	return nil
}

// Source returns the rows of the "from" side: every row not tagged insert
func (d *Diff) Source() []Row {
	return d.filter(TagInsert)
}

// Target returns the rows of the "to" side: every row not tagged delete
func (d *Diff) Target() []Row {
	return d.filter(TagDelete)
}

func (d *Diff) filter(exclude Tag) []Row {
	rows := []Row{}
	for _, r := range d.Rows {
		if r.Tag != exclude {
			rows = append(rows, r.Row)
		}
	}
	return rows
}

func (d *Diff) add(r Row, t Tag) {
	d.Rows = append(d.Rows, DiffRow{Row: r, Tag: t})
}
