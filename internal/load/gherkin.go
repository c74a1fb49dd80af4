package load

import (
	"errors"
	"io"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/qri-io/tablediff"
	"github.com/qri-io/tablediff/internal/log"
)

// ErrNoDataTable is returned for feature files without a step data table
var ErrNoDataTable = errors.New("no step data table found")

// ParseGherkin reads a feature file and returns the first step data table
// in document order, looking through backgrounds, scenarios & rules:
//
//	Feature: Fruit stock
//	  Scenario: Counting the basket
//	    Then the basket holds
//	      | name   | qty |
//	      | apples | 1   |
//
// Cells are trimmed. Inside a cell \| is a pipe, \\ a backslash and \n a
// newline. Examples tables of scenario outlines are not step data, so
// they're never picked
func ParseGherkin(r io.Reader) (*tablediff.Table, error) {
	doc, err := gherkin.ParseGherkinDocument(r, (&messages.Incrementing{}).NewId)
	if err != nil {
		return nil, err
	}

	dt := firstDataTable(doc)
	if dt == nil {
		return nil, ErrNoDataTable
	}

	rows := make([][]string, len(dt.Rows))
	for i, tr := range dt.Rows {
		row := make([]string, len(tr.Cells))
		for j, c := range tr.Cells {
			row[j] = c.Value
		}
		rows[i] = row
	}
	return tablediff.NewTable(rows)
}

func firstDataTable(doc *messages.GherkinDocument) *messages.DataTable {
	if doc == nil || doc.Feature == nil {
		return nil
	}

	var steps [][]*messages.Step
	for _, fc := range doc.Feature.Children {
		switch {
		case fc.Background != nil:
			steps = append(steps, fc.Background.Steps)
		case fc.Scenario != nil:
			steps = append(steps, fc.Scenario.Steps)
		case fc.Rule != nil:
			for _, rc := range fc.Rule.Children {
				switch {
				case rc.Background != nil:
					steps = append(steps, rc.Background.Steps)
				case rc.Scenario != nil:
					steps = append(steps, rc.Scenario.Steps)
				}
			}
		}
	}

	for _, ss := range steps {
		for _, s := range ss {
			if s.DataTable == nil {
				log.Tracef("skipping step %q without a data table", s.Text)
				continue
			}
			log.WithField("step", s.Text).Debugf("using data table at line %d", s.DataTable.Location.Line)
			return s.DataTable
		}
	}
	return nil
}
