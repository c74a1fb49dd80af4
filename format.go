package tablediff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatPrettyString is a convenience wrapper that outputs to a string instead
// of an io.Writer
func FormatPrettyString(d *Diff, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, d, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a pipe table to w, one line per diff row, prefixed by
// the row's tag. if colorTTY is true it will add
// red "-" for deletions
// green "+" for insertions
func FormatPretty(w io.Writer, d *Diff, colorTTY bool) error {
	var colorMap map[Tag]string

	if colorTTY {
		colorMap = map[Tag]string{
			Tag("close"): "\x1b[0m", // end color tag

			TagNone:   "",
			TagInsert: "\x1b[32m", // green
			TagDelete: "\x1b[31m", // red
		}
	}

	if d == nil {
		return nil
	}
	return formatPretty(w, d.Rows, true, colorMap)
}

func formatPretty(w io.Writer, rows []DiffRow, markers bool, colorMap map[Tag]string) error {
	escaped := make([][]string, len(rows))
	var widths []int
	for i, r := range rows {
		escaped[i] = make([]string, len(r.Row))
		for j, c := range r.Row {
			c = escapeCell(c)
			escaped[i][j] = c
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if cw := runewidth.StringWidth(c); cw > widths[j] {
				widths[j] = cw
			}
		}
	}

	for i, r := range rows {
		line := &strings.Builder{}
		line.WriteString(colorMap[r.Tag])
		if markers {
			line.WriteString(string(r.Tag))
			line.WriteByte(' ')
		}
		line.WriteByte('|')
		for j, c := range escaped[i] {
			line.WriteByte(' ')
			line.WriteString(runewidth.FillRight(c, widths[j]))
			line.WriteString(" |")
		}
		line.WriteString(colorMap[Tag("close")])
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}

	return nil
}

var cellEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`, "\n", `\n`)

// escapeCell escapes characters that would break a pipe table
func escapeCell(c string) string {
	return cellEscaper.Replace(c)
}

// FormatPrettyStats summarizes stats in one line: the share of "from" rows
// left unchanged, delete & insert counts and the net change in row count
func FormatPrettyStats(diffStat *Stats) string {
	return formatStats(diffStat, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(diffStat *Stats) string {
	return formatStats(diffStat, true)
}

func formatStats(ds *Stats, color bool) string {
	if ds == nil {
		return ""
	}

	var neutralColor, insertColor, deleteColor, closeColor string
	if color {
		neutralColor = "\x1b[37m"
		insertColor = "\x1b[32m"
		deleteColor = "\x1b[31m"
		closeColor = "\x1b[0m"
	}

	// share of "from" rows that survive, an empty table keeps everything
	kept := 100
	if ds.Left > 0 {
		kept = ds.Unchanged * 100 / ds.Left
	}

	netColor, sign := neutralColor, ""
	switch change := ds.RowChange(); {
	case change > 0:
		netColor, sign = insertColor, "+"
	case change < 0:
		netColor = deleteColor
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "%s%d of %d %s unchanged (%d%%).%s",
		neutralColor, ds.Unchanged, ds.Left, plural(ds.Left, "row"), kept, closeColor)
	fmt.Fprintf(buf, " %s%d deleted%s,", deleteColor, ds.Deletes, closeColor)
	fmt.Fprintf(buf, " %s%d inserted%s", insertColor, ds.Inserts, closeColor)
	fmt.Fprintf(buf, " (%s%s%d %s net%s).\n",
		netColor, sign, ds.RowChange(), plural(ds.RowChange(), "row"), closeColor)
	return buf.String()
}

func plural(n int, word string) string {
	if n == 1 || n == -1 {
		return word
	}
	return word + "s"
}
