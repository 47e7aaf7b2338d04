package main

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/arrange"
	"github.com/abulhuman/fcc-arithmetic-formatter/internal/output"
)

// checkRow describes one accepted problem.
type checkRow struct {
	Problem  string `json:"problem"`
	Width    int    `json:"width"`
	Solution string `json:"solution"`
}

// checkResult holds the data for check output.
type checkResult struct {
	Valid    bool       `json:"valid"`
	Kind     string     `json:"kind,omitempty"`
	Message  string     `json:"message,omitempty"`
	Index    *int       `json:"index,omitempty"`
	Problems []checkRow `json:"problems"`
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "check [problem...]",
		Short: "Validate problems without arranging them",
		Long: `Validate a problem set and report the first failed check.

Checks run in order: at most five problems, then for each problem in turn
the "a + b" shape, operand length, digits-only operands, and the operator.

Examples:
  arranger check "32 + 698" "3801 - 2"     # Show widths and solutions
  arranger check --json "98 + 3g5"         # Report the failure kind
  arranger check --file homework.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, fileFlag)
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read problems from a file ('-' for stdin)")

	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string, file string) error {
	printer := newPrinter(cmd)

	set, err := readProblems(cmd, args, file)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := checkProblems(set.Problems)
	if err != nil {
		logValidationFailure(cmd, err)
		if printer.IsJSON() {
			if writeErr := printer.WriteJSON(result); writeErr != nil {
				return writeErr
			}
			return output.AsExitError(err)
		}
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	rows := make([][]string, 0, len(result.Problems))
	for idx, row := range result.Problems {
		rows = append(rows, []string{strconv.Itoa(idx + 1), row.Problem, strconv.Itoa(row.Width), row.Solution})
	}
	if len(rows) > 0 {
		printer.Table([]string{"#", "Problem", "Width", "Solution"}, rows)
		printer.Println()
	}
	printer.Println("OK:", len(rows), "problem(s) valid")
	return nil
}

// checkProblems validates the problems. On failure the result describes the
// failed check and err is the validation error.
func checkProblems(problems []string) (checkResult, error) {
	arrangement, err := arrange.Arrange(problems, arrange.WithSolutions(true))
	if err != nil {
		result := checkResult{Problems: []checkRow{}, Message: err.Error()}
		var verr *arrange.ValidationError
		if errors.As(err, &verr) {
			result.Kind = verr.Kind.String()
			if verr.Index >= 0 {
				index := verr.Index
				result.Index = &index
			}
		}
		return result, err
	}

	result := checkResult{Valid: true, Problems: make([]checkRow, 0, len(arrangement.Columns))}
	for _, column := range arrangement.Columns {
		result.Problems = append(result.Problems, checkRow{
			Problem:  column.Problem.String(),
			Width:    column.Width,
			Solution: column.Solution,
		})
	}
	return result, nil
}
