package export

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/arrange"
	"github.com/abulhuman/fcc-arithmetic-formatter/internal/output"
)

// SchemaVersion identifies the worksheet format.
const SchemaVersion = "arranger.worksheet/v1"

// Format names accepted by Render.
const (
	MarkdownFormat = "md"
	JSONFormat     = "json"
)

// Options controls worksheet construction.
type Options struct {
	ShowSolutions bool
	// AnswerKey adds a second arrangement with solutions. Ignored when
	// ShowSolutions is set.
	AnswerKey bool
	// Now overrides the creation time, mainly for tests.
	Now time.Time
}

// Worksheet is an arranged problem set ready for export.
type Worksheet struct {
	Schema      string               `json:"schema"`
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	CreatedAt   time.Time            `json:"created_at"`
	Problems    []string             `json:"problems"`
	Arrangement *arrange.Arrangement `json:"arrangement"`
	AnswerKey   *arrange.Arrangement `json:"answer_key,omitempty"`
}

// NewWorksheet validates and arranges the problems.
func NewWorksheet(title string, problems []string, opts Options) (*Worksheet, error) {
	arrangement, err := arrange.Arrange(problems, arrange.WithSolutions(opts.ShowSolutions))
	if err != nil {
		return nil, err
	}

	created := opts.Now
	if created.IsZero() {
		created = time.Now().UTC()
	}

	worksheet := &Worksheet{
		Schema:      SchemaVersion,
		ID:          uuid.NewString(),
		Title:       title,
		CreatedAt:   created,
		Problems:    problems,
		Arrangement: arrangement,
	}
	if opts.AnswerKey && !opts.ShowSolutions {
		// Already validated above.
		worksheet.AnswerKey, _ = arrange.Arrange(problems, arrange.WithSolutions(true))
	}
	return worksheet, nil
}

// Render formats the worksheet in the named format.
func Render(worksheet *Worksheet, format string) ([]byte, error) {
	switch format {
	case MarkdownFormat:
		content, err := FormatMarkdown(worksheet)
		if err != nil {
			return nil, err
		}
		return []byte(content), nil
	case JSONFormat:
		return FormatJSON(worksheet)
	default:
		return nil, output.NewUserError(fmt.Sprintf("--format must be '%s' or '%s'", MarkdownFormat, JSONFormat))
	}
}

// WriteFile renders the worksheet and writes it to path.
func WriteFile(worksheet *Worksheet, format, path string) error {
	data, err := Render(worksheet, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("failed to write file %s", path), err)
	}
	return nil
}
