package command

import (
	"fmt"

	"github.com/qri-io/tablediff/internal/load"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func oneOf(value any, valid []string) error {
	for _, v := range valid {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", valid)
}

func OutputValidator(value any) error {
	return oneOf(value, []string{"text", "json"})
}

func MatcherValidator(value any) error {
	return oneOf(value, []string{"lcs", "difflib"})
}

// FormatValidator accepts any load format, or an empty string to infer
// formats from file names
func FormatValidator(value any) error {
	valid := []string{""}
	for _, f := range load.Formats {
		valid = append(valid, string(f))
	}
	return oneOf(value, valid)
}
