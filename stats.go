package tablediff

// Stats holds statistical metadata about a diff
type Stats struct {
	Left  int `json:"leftRows"`  // count of rows in the from table
	Right int `json:"rightRows"` // count of rows in the to table

	Unchanged int `json:"unchanged,omitempty"` // number of rows in both tables
	Inserts   int `json:"inserts,omitempty"`   // number of rows inserted
	Deletes   int `json:"deletes,omitempty"`   // number of rows deleted
}

// RowChange returns a count of the shift between from & to tables
func (s Stats) RowChange() int {
	return s.Right - s.Left
}

func (s *Stats) calc(from, to *Table, d *Diff) {
	*s = Stats{Left: from.Len(), Right: to.Len()}
	for _, r := range d.Rows {
		switch r.Tag {
		case TagNone:
			s.Unchanged++
		case TagInsert:
			s.Inserts++
		case TagDelete:
			s.Deletes++
		}
	}
}
