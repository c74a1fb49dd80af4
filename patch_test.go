package tablediff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type PatchTestCase struct {
	description string
	table       [][]string
	patch       *Diff
	expect      [][]string
}

func TestPatch(t *testing.T) {
	cases := []PatchTestCase{
		{
			"no changes",
			[][]string{{"a"}, {"b"}},
			&Diff{Rows: rows(TagNone, []string{"a"}, TagNone, []string{"b"})},
			[][]string{{"a"}, {"b"}},
		},
		{
			"replace row",
			[][]string{{"a"}, {"b"}},
			&Diff{Rows: rows(TagNone, []string{"a"}, TagDelete, []string{"b"}, TagInsert, []string{"c"})},
			[][]string{{"a"}, {"c"}},
		},
		{
			"insert into empty table",
			[][]string{},
			&Diff{Rows: rows(TagInsert, []string{"a"})},
			[][]string{{"a"}},
		},
		{
			"delete all rows",
			[][]string{{"a"}, {"b"}},
			&Diff{Rows: rows(TagDelete, []string{"a"}, TagDelete, []string{"b"})},
			[][]string{},
		},
	}

	for _, c := range cases {
		got, err := Patch(MustNewTable(c.table), c.patch)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.description, err)
			continue
		}
		if diff := cmp.Diff(c.expect, got.Raw()); diff != "" {
			t.Errorf("%s: result mismatch (-want +got):\n%s", c.description, diff)
		}
	}
}

func TestPatchErrors(t *testing.T) {
	cases := []PatchTestCase{
		{"nil diff", [][]string{{"a"}}, nil, nil},
		{"row mismatch", [][]string{{"a"}}, &Diff{Rows: rows(TagNone, []string{"b"})}, nil},
		{"delete mismatch", [][]string{{"a"}}, &Diff{Rows: rows(TagDelete, []string{"b"})}, nil},
		{"too many rows", [][]string{{"a"}}, &Diff{Rows: rows(TagNone, []string{"a"}, TagNone, []string{"a"})}, nil},
		{"too few rows", [][]string{{"a"}, {"b"}}, &Diff{Rows: rows(TagNone, []string{"a"})}, nil},
		{"unknown tag", [][]string{{"a"}}, &Diff{Rows: []DiffRow{{Row: Row{"a"}, Tag: Tag("~")}}}, nil},
		{"ragged result", [][]string{}, &Diff{Rows: rows(TagInsert, []string{"a"}, TagInsert, []string{"a", "b"})}, nil},
	}

	for _, c := range cases {
		if _, err := Patch(MustNewTable(c.table), c.patch); err == nil {
			t.Errorf("%s: expected error", c.description)
		}
	}
}
