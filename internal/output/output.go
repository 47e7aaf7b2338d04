package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/arrange"
)

// Printer writes command output in either human or JSON form.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Bold     lipgloss.Style
	Key      lipgloss.Style
	Operand  lipgloss.Style
	Rule     lipgloss.Style
	Solution lipgloss.Style
}

// NewPrinter creates a new Printer.
// If jsonMode is true, output is JSON. If isTTY is true, human output is
// styled.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	styles := &Styles{
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:     lipgloss.NewStyle().Bold(true),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Operand:  lipgloss.NewStyle().Bold(true),
		Rule:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),  // Gray
		Solution: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // Green
	}

	if !isTTY {
		plain := lipgloss.NewStyle()
		styles = &Styles{
			Error:    plain,
			Warning:  plain,
			Bold:     plain,
			Key:      plain,
			Operand:  plain,
			Rule:     plain,
			Solution: plain,
		}
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and warnings in human mode.
// In JSON mode, errors still go to the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY returns true if the printer output is a TTY.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// arrangementJSON is the JSON form of an arrangement.
type arrangementJSON struct {
	Text          string           `json:"text"`
	Lines         []string         `json:"lines"`
	Columns       []arrange.Column `json:"columns"`
	ShowSolutions bool             `json:"show_solutions"`
}

// Arrangement writes an arranged problem set. Human output is the plain
// arrangement text followed by a newline; on a TTY each line is styled
// without changing its width.
func (p *Printer) Arrangement(a *arrange.Arrangement) error {
	if p.json {
		lines := a.Lines
		if lines == nil {
			lines = []string{}
		}
		return p.writeJSON(arrangementJSON{
			Text:          a.String(),
			Lines:         lines,
			Columns:       a.Columns,
			ShowSolutions: a.ShowSolutions,
		})
	}

	if !p.isTTY {
		if len(a.Lines) > 0 {
			mustWrite(fmt.Fprintln(p.w, a.String()))
		}
		return nil
	}

	for idx, line := range a.Lines {
		mustWrite(fmt.Fprintln(p.w, p.lineStyle(idx).Render(line)))
	}
	return nil
}

// lineStyle picks the style for a given arrangement line.
func (p *Printer) lineStyle(line int) lipgloss.Style {
	switch line {
	case arrange.LineSeparator:
		return p.styles.Rule
	case arrange.LineSolution:
		return p.styles.Solution
	default:
		return p.styles.Operand
	}
}

// Error outputs an error.
// For JSON mode, outputs {"error": "...", "code": N[, "kind": "..."]} to stdout.
// For human mode, writes the message to errW. Validation messages already
// start with "Error:" and are written verbatim.
func (p *Printer) Error(err error) {
	exitErr := AsExitError(err)

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code, exitErr.Kind)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	if rest, ok := strings.CutPrefix(exitErr.Message, "Error: "); ok {
		mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), rest))
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn outputs a warning message.
// For JSON mode, outputs {"warning": "..."} to stdout.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.writeJSON(map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON encodes any data as indented JSON.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N} plus "kind" when non-empty.
func ErrorJSON(message string, code int, kind string) []byte {
	data := map[string]any{
		"error": message,
		"code":  code,
	}
	if kind != "" {
		data["kind"] = kind
	}
	result, _ := json.Marshal(data)
	return result
}

// mustWrite panics if a write to stdout, stderr or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

// Table renders rows under bold headers with auto-sized columns.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := calcColumnWidths(headers, rows)
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = p.styles.Bold.Render(padRight(h, widths[i]))
	}
	mustWrite(fmt.Fprintln(p.w, strings.TrimRight(strings.Join(cells, "  "), " ")))

	for _, row := range rows {
		cells = cells[:0]
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			cells = append(cells, padRight(cell, widths[i]))
		}
		mustWrite(fmt.Fprintln(p.w, strings.TrimRight(strings.Join(cells, "  "), " ")))
	}
}

// calcColumnWidths computes the max width for each column.
func calcColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// KeyValue renders "Key: Value".
func (p *Printer) KeyValue(key string, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}

// padRight pads a string with spaces to reach the target width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
