package main

import (
	"github.com/spf13/cobra"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/export"
	"github.com/abulhuman/fcc-arithmetic-formatter/internal/logging"
)

// exportFlags holds the export command's flag values.
type exportFlags struct {
	format    string
	out       string
	title     string
	file      string
	solutions bool
	answerKey bool
}

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export [problem...]",
		Short: "Export problems as a worksheet",
		Long: `Export an arranged problem set as a markdown or JSON worksheet.

Markdown worksheets start with YAML frontmatter and hold the arrangement in a
text block. With --answer-key a second, solved arrangement is appended.

Examples:
  arranger export "32 + 698" "3801 - 2"                  # Markdown to stdout
  arranger export --answer-key --out sheet.md -f hw.yaml # Worksheet with answers
  arranger export --format json "45 + 43"                # JSON worksheet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "Output format: md or json (default: json with --json, else md)")
	cmd.Flags().StringVar(&flags.out, "out", "", "Output file (if omitted, writes to stdout)")
	cmd.Flags().StringVar(&flags.title, "title", "Arithmetic", "Worksheet title")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Read problems from a file ('-' for stdin)")
	cmd.Flags().BoolVarP(&flags.solutions, "solutions", "s", false, "Show solutions in the worksheet")
	cmd.Flags().BoolVar(&flags.answerKey, "answer-key", false, "Append a solved copy when solutions are hidden")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, args []string, flags exportFlags) error {
	printer := newPrinter(cmd)
	logger := logging.FromContext(cmd.Context())

	set, err := readProblems(cmd, args, flags.file)
	if err != nil {
		printer.Error(err)
		return err
	}

	showSolutions, err := resolveSolutions(cmd, set)
	if err != nil {
		printer.Error(err)
		return err
	}

	worksheet, err := export.NewWorksheet(flags.title, set.Problems, export.Options{
		ShowSolutions: showSolutions,
		AnswerKey:     flags.answerKey,
	})
	if err != nil {
		logValidationFailure(cmd, err)
		printer.Error(err)
		return err
	}

	format := determineFormat(flags.format, printer.IsJSON())

	if flags.out == "" {
		data, err := export.Render(worksheet, format)
		if err != nil {
			printer.Error(err)
			return err
		}
		printer.Print("%s", data)
		return nil
	}

	if err := export.WriteFile(worksheet, format, flags.out); err != nil {
		printer.Error(err)
		return err
	}
	logger.Debug().Str("path", flags.out).Str("format", format).Msg("wrote worksheet")

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"path":     flags.out,
			"format":   format,
			"problems": len(set.Problems),
		})
	}
	printer.Print("Wrote %s worksheet to %s\n", format, flags.out)
	return nil
}

// determineFormat returns the format to use based on flags.
func determineFormat(formatFlag string, jsonMode bool) string {
	if formatFlag != "" {
		return formatFlag
	}
	if jsonMode {
		return export.JSONFormat
	}
	return export.MarkdownFormat
}
