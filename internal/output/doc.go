// Package output provides structured output and exit-code handling for the
// arranger CLI.
//
// Every command writes through a Printer, which switches between
// human-readable text and JSON based on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY)
//	printer.Arrangement(arrangement)
//	printer.Error(err)
//
// # JSON Mode
//
// Arrangements are written as
//
//	{"text": "...", "lines": [...], "columns": [...], "show_solutions": false}
//
// and errors as {"error": "message", "code": N, "kind": "..."}, where kind is
// present only for rejected problem sets.
//
// # Styling
//
// On a terminal, arrangement lines, errors, and table headers are styled
// with lipgloss. Styling never adds or removes characters, so columns stay
// aligned. Off a terminal (or with --color never) output is plain text.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Rejected problem set, bad flags
//	output.ExitSystemError // 2: Unreadable input, I/O error
package output
