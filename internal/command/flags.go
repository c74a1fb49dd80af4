package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewFlags constructs the flags of the tablediff command. Each flag can be
// set from a TABLEDIFF_* env var, or from the YAML config file at cfgPath
// when cfgPath isn't empty.
func NewFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: sources("TABLEDIFF_COLOR", "color", cfgPath),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "table format of both inputs: gherkin, csv, yaml or json. Inferred from file extensions when empty",
			Sources: sources("TABLEDIFF_FORMAT", "format", cfgPath),
			Validator: func(value string) error {
				return FlagValidators(value, FormatValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "legacy-membership",
			Usage:   "in unordered mode, match duplicate rows against already matched rows",
			Sources: sources("TABLEDIFF_LEGACY_MEMBERSHIP", "legacy-membership", cfgPath),
		},
		&cli.StringFlag{
			Name:    "matcher",
			Aliases: []string{"m"},
			Usage:   "edit script algorithm for ordered diffs: lcs or difflib",
			Value:   "lcs",
			Sources: sources("TABLEDIFF_MATCHER", "matcher", cfgPath),
			Validator: func(value string) error {
				return FlagValidators(value, MatcherValidator)
			},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: text or json",
			Value:   "text",
			Sources: sources("TABLEDIFF_OUTPUT", "output", cfgPath),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "stats",
			Aliases: []string{"s"},
			Usage:   "print a summary of row changes",
			Sources: sources("TABLEDIFF_STATS", "stats", cfgPath),
		},
		&cli.BoolFlag{
			Name:    "unordered",
			Aliases: []string{"u"},
			Usage:   "ignore row order, comparing tables as multisets of rows",
			Sources: sources("TABLEDIFF_UNORDERED", "unordered", cfgPath),
		},
	}
}

// sources chains an env var and, if a config file is present, its key
func sources(env, key, cfgPath string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(cli.EnvVar(env))
	if cfgPath != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(cfgPath)))
	}
	return chain
}
