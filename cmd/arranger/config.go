package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/config"
	"github.com/abulhuman/fcc-arithmetic-formatter/internal/output"
)

// configResult holds the data for config output.
type configResult struct {
	Dir           string `json:"dir"`
	Path          string `json:"path"`
	ShowSolutions bool   `json:"show_solutions"`
	Color         string `json:"color"`
}

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show where arranger looks for its config file and the settings in effect.

Settings come from <dir>/config.yaml and are overridden by
ARRANGER_SHOW_SOLUTIONS and ARRANGER_COLOR. Env files (.env.local, .env,
<dir>/env) may set ARRANGER_* variables that are not already exported.

Example config.yaml:
  show_solutions: true
  color: never`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

// runConfig executes the config command.
func runConfig(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	cfg, err := config.Resolve()
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	result := configResult{
		Dir:           config.Dir(),
		Path:          config.Path(),
		ShowSolutions: cfg.ShowSolutions,
		Color:         cfg.Color,
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.KeyValue("dir", result.Dir)
	printer.KeyValue("path", result.Path)
	printer.KeyValue("show_solutions", strconv.FormatBool(result.ShowSolutions))
	printer.KeyValue("color", result.Color)
	return nil
}
