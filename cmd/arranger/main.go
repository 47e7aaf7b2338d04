// Package main provides the entry point for the arranger CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/config"
	"github.com/abulhuman/fcc-arithmetic-formatter/internal/envfile"
	"github.com/abulhuman/fcc-arithmetic-formatter/internal/logging"
	"github.com/abulhuman/fcc-arithmetic-formatter/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// persistentFlag looks up a flag on the command, then on the root.
func persistentFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "json") == "true"
}

// isVerbose reads the --verbose persistent flag.
func isVerbose(cmd *cobra.Command) bool {
	return persistentFlag(cmd, "verbose") == "true"
}

// useColor decides whether human output is styled. --color wins over the
// config file; "auto" styles only when stdout is a terminal.
func useColor(cmd *cobra.Command) bool {
	mode := persistentFlag(cmd, "color")
	if mode == "" {
		if cfg, err := config.Resolve(); err == nil {
			mode = cfg.Color
		}
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter builds the printer shared by all commands. Human errors go to
// stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the arranger CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arranger",
		Short: "Arrange arithmetic problems vertically",
		Long: `Arranger - lays out addition and subtraction problems the way they are
written by hand: stacked operands, a dashed rule, and an optional answer.

  arranger arrange "32 + 698" "3801 - 2" "45 + 43" "123 + 49"

At most five problems are arranged at once. Operands must be digits only and
at most four digits long; the operator must be '+' or '-'.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'arranger --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	var logCloser io.Closer

	// Environment variables always take precedence over env file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loadEnvFiles()
		var logger zerolog.Logger
		logger, logCloser = logging.Open(cmd.ErrOrStderr(), isVerbose(cmd), persistentFlag(cmd, "log-file"))
		cmd.SetContext(logging.WithContext(cmd.Context(), logger))
		return nil
	}
	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		if logCloser == nil {
			return nil
		}
		return logCloser.Close()
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "", "Color output: auto, always, or never (default from config, else auto)")
	cmd.PersistentFlags().Bool("verbose", false, "Log diagnostics to stderr")
	cmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file (rotated at 10 MB)")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env
func loadEnvFiles() {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	_, _ = envfile.LoadFirst(paths...)
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newArrangeCmd(), "core")
	addGroupedCommand(cmd, newCheckCmd(), "core")
	addGroupedCommand(cmd, newExportCmd(), "core")

	addGroupedCommand(cmd, newServeCmd(), "agent")

	addGroupedCommand(cmd, newConfigCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
