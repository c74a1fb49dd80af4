package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/qri-io/tablediff"
	"github.com/qri-io/tablediff/internal/load"
	"github.com/qri-io/tablediff/internal/log"
)

// report is the json output of a comparison
type report struct {
	Different bool             `json:"different"`
	Diff      *tablediff.Diff  `json:"diff"`
	Stats     *tablediff.Stats `json:"stats,omitempty"`
}

func compareAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("%w: expected 2 table files, got %d", ErrUsage, cmd.Args().Len())
	}

	format := load.Format(cmd.String("format"))
	expected, err := load.File(cmd.Args().Get(0), format)
	if err != nil {
		return err
	}
	actual, err := load.File(cmd.Args().Get(1), format)
	if err != nil {
		return err
	}

	stats := &tablediff.Stats{}
	opts := []tablediff.DiffOption{tablediff.OptionSetStats(stats)}
	if cmd.String("matcher") == "difflib" {
		opts = append(opts, tablediff.OptionEditScripter(tablediff.SequenceMatcher))
	}
	if cmd.Bool("legacy-membership") {
		opts = append(opts, tablediff.OptionLegacyMembership())
	}
	td := tablediff.New(opts...)

	var d *tablediff.Diff
	if cmd.Bool("unordered") {
		log.Infof("comparing %d & %d rows, unordered", expected.Len(), actual.Len())
		d, err = td.DiffUnordered(ctx, expected, actual)
	} else {
		log.Infof("comparing %d & %d rows using %s", expected.Len(), actual.Len(), cmd.String("matcher"))
		d, err = td.Diff(ctx, expected, actual)
	}
	if err != nil {
		return err
	}

	if err := writeReport(cmd, d, stats); err != nil {
		return err
	}
	if d.Different {
		return ErrTablesDiffer
	}
	return nil
}

func writeReport(cmd *cli.Command, d *tablediff.Diff, stats *tablediff.Stats) error {
	w := cmd.Writer

	if cmd.String("output") == "json" {
		r := report{Different: d.Different, Diff: d}
		if cmd.Bool("stats") {
			r.Stats = stats
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if d.Different {
		if err := tablediff.FormatPretty(w, d, cmd.Bool("color")); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(w, "The tables are identical.")
	}

	if cmd.Bool("stats") {
		if cmd.Bool("color") {
			fmt.Fprint(w, tablediff.FormatPrettyStatsColor(stats))
		} else {
			fmt.Fprint(w, tablediff.FormatPrettyStats(stats))
		}
	}
	return nil
}
