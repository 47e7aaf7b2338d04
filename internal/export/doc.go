// Package export renders arranged problem sets as worksheets.
//
// # Supported Formats
//
//   - Markdown: YAML frontmatter followed by the arrangement in a text block
//   - JSON: the worksheet with its arrangement and optional answer key
//
// # Markdown Export
//
//	worksheet, err := export.NewWorksheet("Warm-up", problems, export.Options{AnswerKey: true})
//	markdown, err := export.FormatMarkdown(worksheet)
//
// Example output:
//
//	---
//	schema: arranger.worksheet/v1
//	id: 6f1c1b0e-3c55-4a8e-9d0b-2f4e7a1d5c90
//	title: Warm-up
//	date: "2026-01-15"
//	problems:
//	    - 32 + 698
//	solutions: false
//	---
//
//	# Warm-up
//
//	```text
//	   32
//	+ 698
//	-----
//	```
//
//	## Answers
//
//	```text
//	   32
//	+ 698
//	-----
//	  730
//	```
//
// The answer key is only added when the worksheet itself hides solutions.
package export
