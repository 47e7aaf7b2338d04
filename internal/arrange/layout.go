package arrange

import "strings"

// Gutter separates adjacent columns.
const Gutter = "    "

// Line positions within a column.
const (
	LineFirst = iota
	LineSecond
	LineSeparator
	LineSolution
)

// Column is one problem rendered at its own width.
type Column struct {
	Problem  Problem  `json:"problem"`
	Width    int      `json:"width"`
	Lines    []string `json:"lines"`
	Solution string   `json:"solution,omitempty"`
}

// Arrangement is a rendered problem set.
type Arrangement struct {
	Columns       []Column `json:"columns"`
	Lines         []string `json:"lines"`
	ShowSolutions bool     `json:"show_solutions"`
}

// String joins the lines with newlines, without a trailing newline.
func (a *Arrangement) String() string {
	return strings.Join(a.Lines, "\n")
}

// Layout renders validated problems side by side. Problems must already have
// passed Validate; Layout does not check them again.
func Layout(problems []Problem, showSolutions bool) *Arrangement {
	arrangement := &Arrangement{
		Columns:       make([]Column, 0, len(problems)),
		ShowSolutions: showSolutions,
	}
	if len(problems) == 0 {
		return arrangement
	}

	lineCount := LineSeparator + 1
	if showSolutions {
		lineCount = LineSolution + 1
	}
	builders := make([]strings.Builder, lineCount)

	for idx, problem := range problems {
		column := layoutColumn(problem, showSolutions)
		arrangement.Columns = append(arrangement.Columns, column)
		for line := range builders {
			if idx > 0 {
				builders[line].WriteString(Gutter)
			}
			builders[line].WriteString(column.Lines[line])
		}
	}

	arrangement.Lines = make([]string, lineCount)
	for line := range builders {
		arrangement.Lines[line] = builders[line].String()
	}
	return arrangement
}

// layoutColumn renders a single problem.
func layoutColumn(problem Problem, showSolutions bool) Column {
	width := problem.Width()
	column := Column{
		Problem: problem,
		Width:   width,
		Lines: []string{
			padLeft(problem.A, width),
			string(problem.Op) + padLeft(problem.B, width-1),
			strings.Repeat("-", width),
		},
	}
	if showSolutions {
		column.Solution = solution(problem)
		column.Lines = append(column.Lines, padLeft(column.Solution, width))
	}
	return column
}

// padLeft right-aligns s within width. Values wider than width are returned
// unchanged.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
