package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/arrange"
	"github.com/abulhuman/fcc-arithmetic-formatter/internal/logging"
)

// newArrangeCmd creates the arrange command.
func newArrangeCmd() *cobra.Command {
	var solutionsFlag bool
	var fileFlag string

	cmd := &cobra.Command{
		Use:     "arrange [problem...]",
		Aliases: []string{"fmt"},
		Short:   "Arrange problems side by side",
		Long: `Arrange up to five addition and subtraction problems vertically.

Each problem is written as "a + b" or "a - b". Problems can also be read
from a file: YAML (.yaml, .yml) and TOML (.toml) files carry a problems list
and an optional show_solutions switch, anything else is read as one problem
per line with blank lines and '#' comments ignored.

Examples:
  arranger arrange "32 + 698" "3801 - 2"       # Arrange two problems
  arranger arrange -s "32 + 8" "1 - 3801"      # Include solutions
  arranger arrange --file homework.yaml        # Read a problem set
  cat problems.txt | arranger arrange -f -     # Read from stdin
  arranger arrange --json "45 + 43"            # Structured output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArrange(cmd, args, fileFlag)
		},
	}

	cmd.Flags().BoolVarP(&solutionsFlag, "solutions", "s", false, "Show the solution under each problem")
	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read problems from a file ('-' for stdin)")

	return cmd
}

// runArrange executes the arrange command.
func runArrange(cmd *cobra.Command, args []string, file string) error {
	printer := newPrinter(cmd)
	logger := logging.FromContext(cmd.Context())

	set, err := readProblems(cmd, args, file)
	if err != nil {
		printer.Error(err)
		return err
	}

	showSolutions, err := resolveSolutions(cmd, set)
	if err != nil {
		printer.Error(err)
		return err
	}

	arrangement, err := arrange.Arrange(set.Problems, arrange.WithSolutions(showSolutions))
	if err != nil {
		logValidationFailure(cmd, err)
		printer.Error(err)
		return err
	}

	logger.Debug().
		Int("problems", len(set.Problems)).
		Bool("solutions", showSolutions).
		Msg("arranged problem set")
	return printer.Arrangement(arrangement)
}

// logValidationFailure records why a problem set was rejected.
func logValidationFailure(cmd *cobra.Command, err error) {
	logger := logging.FromContext(cmd.Context())
	var verr *arrange.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	logger.Debug().
		Stringer("kind", verr.Kind).
		Int("index", verr.Index).
		Str("problem", verr.Problem).
		Msg("problem set rejected")
}
