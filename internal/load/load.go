package load

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/qri-io/tablediff"
	"github.com/qri-io/tablediff/internal/log"
)

// Format names a table source format
type Format string

const (
	Gherkin = Format("gherkin")
	CSV     = Format("csv")
	YAML    = Format("yaml")
	JSON    = Format("json")
)

// Formats lists every supported format
var Formats = []Format{Gherkin, CSV, YAML, JSON}

// ErrUnknownFormat is returned for unsupported format names & file extensions
var ErrUnknownFormat = errors.New("unknown table format")

// FormatFromPath infers a table format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".feature":
		return Gherkin, nil
	case ".csv":
		return CSV, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: can't infer format of %q", ErrUnknownFormat, path)
}

// File reads a table from path. An empty format is inferred from the file
// extension
func File(path string, f Format) (*tablediff.Table, error) {
	if f == "" {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	t, err := Parse(fh, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	log.WithField("format", f).Debugf("loaded %d rows of %d columns from %s", t.Len(), t.Width(), path)
	return t, nil
}

// Parse reads a table in the given format from r
func Parse(r io.Reader, f Format) (*tablediff.Table, error) {
	switch f {
	case Gherkin:
		return ParseGherkin(r)
	case CSV:
		return ParseCSV(r)
	case YAML:
		return ParseYAML(r)
	case JSON:
		return ParseJSON(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// ParseCSV reads comma separated records, one row per record
func ParseCSV(r io.Reader) (*tablediff.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return tablediff.NewTable(records)
}

// ParseYAML reads a sequence of sequences of scalars. Scalars keep their
// source text, so 1.50 stays "1.50" and null becomes an empty cell
func ParseYAML(r io.Reader) (*tablediff.Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return tablediff.NewTable(nil)
		}
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a sequence of rows", root.Line)
	}

	rows := make([][]string, len(root.Content))
	for i, rn := range root.Content {
		if rn.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: row %d is not a sequence", rn.Line, i)
		}
		row := make([]string, len(rn.Content))
		for j, cn := range rn.Content {
			if cn.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: cell %d of row %d is not a scalar", cn.Line, j, i)
			}
			if cn.Tag != "!!null" {
				row[j] = cn.Value
			}
		}
		rows[i] = row
	}
	return tablediff.NewTable(rows)
}

// ParseJSON reads an array of arrays. Strings are unquoted, null becomes an
// empty cell & every other value keeps its raw JSON text
func ParseJSON(r io.Reader) (*tablediff.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return tablediff.NewTable(nil)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid json")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("expected an array of rows")
	}

	var rows [][]string
	for i, rv := range doc.Array() {
		if !rv.IsArray() {
			return nil, fmt.Errorf("row %d is not an array", i)
		}
		cells := rv.Array()
		row := make([]string, len(cells))
		for j, cv := range cells {
			switch cv.Type {
			case gjson.String:
				row[j] = cv.String()
			case gjson.Null:
				row[j] = ""
			default:
				row[j] = cv.Raw
			}
		}
		rows = append(rows, row)
	}
	return tablediff.NewTable(rows)
}
