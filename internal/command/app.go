package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/qri-io/tablediff/internal/config"
	"github.com/qri-io/tablediff/internal/log"
)

var (
	// ErrTablesDiffer is returned by the command when the compared tables
	// differ, after the diff has been written
	ErrTablesDiffer = errors.New("tables differ")
	// ErrUsage signals invalid command line arguments
	ErrUsage = errors.New("usage")
)

// Exit codes of the tablediff command
const (
	ExitMatch    = 0
	ExitMismatch = 1
	ExitError    = 2
)

// InitApp builds the tablediff command. Output is written to w, errors to
// errW
func InitApp(w, errW io.Writer) *cli.Command {
	cfgPath := config.Path()
	if cfgPath != "" {
		log.Debugf("reading flag defaults from %s", cfgPath)
	}

	return &cli.Command{
		Name:      "tablediff",
		Usage:     "compare an expected table with an actual table",
		ArgsUsage: "<expected> <actual>",
		Writer:    w,
		ErrWriter: errW,
		Flags:     NewFlags(cfgPath),
		Action:    compareAction,
	}
}

// ExitCode maps the error returned by running the command to a process exit
// code, reporting unexpected errors to errW
func ExitCode(err error, errW io.Writer) int {
	switch {
	case err == nil:
		return ExitMatch
	case errors.Is(err, ErrTablesDiffer):
		return ExitMismatch
	default:
		log.Errorf("%s", err)
		fmt.Fprintf(errW, "tablediff: %s\n", err)
		return ExitError
	}
}
