package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/config"
	"github.com/abulhuman/fcc-arithmetic-formatter/internal/output"
	"github.com/abulhuman/fcc-arithmetic-formatter/internal/problemset"
)

// stdinPath selects standard input for --file.
const stdinPath = "-"

// readProblems collects problems from positional args or from --file.
// The returned set's ShowSolutions is nil unless a YAML or TOML file sets it.
func readProblems(cmd *cobra.Command, args []string, file string) (*problemset.Set, error) {
	if file == "" {
		return &problemset.Set{Problems: args}, nil
	}
	if len(args) > 0 {
		return nil, output.NewUserError("pass problems as arguments or with --file, not both")
	}

	if file == stdinPath {
		set, err := problemset.Read(cmd.InOrStdin(), problemset.FormatText)
		if err != nil {
			return nil, output.NewSystemErrorWithCause("failed to read problems from stdin", err)
		}
		return set, nil
	}

	set, err := problemset.Load(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, output.NewUserError(fmt.Sprintf("problem set not found: %s", file))
		}
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("failed to read problem set %s", file), err)
	}
	return set, nil
}

// resolveSolutions picks the solutions setting. An explicit --solutions flag
// wins, then the problem set file, then config and environment.
func resolveSolutions(cmd *cobra.Command, set *problemset.Set) (bool, error) {
	if flag := cmd.Flags().Lookup("solutions"); flag != nil && flag.Changed {
		return flag.Value.String() == "true", nil
	}
	if set.ShowSolutions != nil {
		return *set.ShowSolutions, nil
	}
	cfg, err := config.Resolve()
	if err != nil {
		return false, output.NewUserError(err.Error())
	}
	return cfg.ShowSolutions, nil
}
