package tablediff

import "testing"

func TestFormatPretty(t *testing.T) {
	d := &Diff{Different: true, Rows: rows(
		TagNone, []string{"a", "1"},
		TagDelete, []string{"bb", "2"},
		TagInsert, []string{"x|y", "2"},
		TagNone, []string{"c", "33"},
	)}

	got, err := FormatPrettyString(d, false)
	if err != nil {
		t.Fatal(err)
	}
	expect := "  | a    | 1  |\n" +
		"- | bb   | 2  |\n" +
		"+ | x\\|y | 2  |\n" +
		"  | c    | 33 |\n"
	if got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}

func TestFormatPrettyColor(t *testing.T) {
	d := &Diff{Rows: rows(
		TagInsert, []string{"a"},
		TagDelete, []string{"b"},
	)}

	got, err := FormatPrettyString(d, true)
	if err != nil {
		t.Fatal(err)
	}
	expect := "\x1b[32m+ | a |\x1b[0m\n" +
		"\x1b[31m- | b |\x1b[0m\n"
	if got != expect {
		t.Errorf("want:\n%q\ngot:\n%q", expect, got)
	}
}

func TestFormatWideCells(t *testing.T) {
	d := &Diff{Rows: rows(
		TagNone, []string{"日本"},
		TagNone, []string{"abc"},
	)}
	got, err := FormatPrettyString(d, false)
	if err != nil {
		t.Fatal(err)
	}
	expect := "  | 日本 |\n" +
		"  | abc  |\n"
	if got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}

func TestTableString(t *testing.T) {
	tbl := MustNewTable([][]string{{"a", "1"}, {"bb", "line\nbreak"}})
	expect := "| a  | 1           |\n" +
		"| bb | line\\nbreak |\n"
	if got := tbl.String(); got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}

func TestMismatchErrorMessage(t *testing.T) {
	err := &MismatchError{Diff: &Diff{Different: true, Rows: rows(
		TagDelete, []string{"a"},
		TagInsert, []string{"b"},
	)}}
	expect := "tables are different (- expected, + actual):\n" +
		"- | a |\n" +
		"+ | b |\n"
	if got := err.Error(); got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}

func TestFormatStatsPretty(t *testing.T) {
	cases := []struct {
		description string
		input       *Stats
		expect      string
	}{
		{"every row replaced",
			&Stats{Left: 2, Right: 6, Inserts: 6, Deletes: 2},
			"0 of 2 rows unchanged (0%). 2 deleted, 6 inserted (+4 rows net).\n",
		},
		{"one row lost",
			&Stats{Left: 2, Right: 1, Inserts: 1, Deletes: 1, Unchanged: 1},
			"1 of 2 rows unchanged (50%). 1 deleted, 1 inserted (-1 row net).\n",
		},
		{"share rounds down",
			&Stats{Left: 3, Right: 3, Inserts: 2, Deletes: 2, Unchanged: 1},
			"1 of 3 rows unchanged (33%). 2 deleted, 2 inserted (0 rows net).\n",
		},
		{"single row kept",
			&Stats{Left: 1, Right: 2, Inserts: 1, Unchanged: 1},
			"1 of 1 row unchanged (100%). 0 deleted, 1 inserted (+1 row net).\n",
		},
		{"empty from table",
			&Stats{Left: 0, Right: 0},
			"0 of 0 rows unchanged (100%). 0 deleted, 0 inserted (0 rows net).\n",
		},
	}

	for i, c := range cases {
		got := FormatPrettyStats(c.input)
		if got != c.expect {
			t.Errorf("%d %s\nwant:\n%s\ngot:\n%s", i, c.description, c.expect, got)
		}
	}
}

func TestFormatStatsColor(t *testing.T) {
	got := FormatPrettyStatsColor(&Stats{Left: 2, Right: 3, Inserts: 1, Unchanged: 2})
	expect := "\x1b[37m2 of 2 rows unchanged (100%).\x1b[0m" +
		" \x1b[31m0 deleted\x1b[0m," +
		" \x1b[32m1 inserted\x1b[0m" +
		" (\x1b[32m+1 row net\x1b[0m).\n"
	if got != expect {
		t.Errorf("want:\n%q\ngot:\n%q", expect, got)
	}
}

func TestFormatStatsNull(t *testing.T) {
	got := FormatPrettyStats(nil)
	expect := ``
	if got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}
