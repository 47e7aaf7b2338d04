package export

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/arrange"
)

// frontmatter is the YAML header of a markdown worksheet.
type frontmatter struct {
	Schema    string   `yaml:"schema"`
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title,omitempty"`
	Date      string   `yaml:"date"`
	Problems  []string `yaml:"problems"`
	Solutions bool     `yaml:"solutions"`
}

// FormatMarkdown formats a worksheet as a markdown document.
func FormatMarkdown(worksheet *Worksheet) (string, error) {
	var builder strings.Builder

	if err := writeFrontmatter(&builder, worksheet); err != nil {
		return "", err
	}

	if worksheet.Title != "" {
		fmt.Fprintf(&builder, "# %s\n\n", worksheet.Title)
	}
	writeBlock(&builder, worksheet.Arrangement)

	if worksheet.AnswerKey != nil {
		builder.WriteString("\n## Answers\n\n")
		writeBlock(&builder, worksheet.AnswerKey)
	}
	return builder.String(), nil
}

// writeFrontmatter writes the YAML frontmatter section.
func writeFrontmatter(builder *strings.Builder, worksheet *Worksheet) error {
	header, err := yaml.Marshal(frontmatter{
		Schema:    worksheet.Schema,
		ID:        worksheet.ID,
		Title:     worksheet.Title,
		Date:      worksheet.CreatedAt.Format("2006-01-02"),
		Problems:  worksheet.Problems,
		Solutions: worksheet.Arrangement.ShowSolutions,
	})
	if err != nil {
		return fmt.Errorf("encoding frontmatter: %w", err)
	}

	builder.WriteString("---\n")
	builder.Write(header)
	builder.WriteString("---\n\n")
	return nil
}

// writeBlock writes an arrangement inside a fenced text block.
func writeBlock(builder *strings.Builder, arrangement *arrange.Arrangement) {
	builder.WriteString("```text\n")
	if text := arrangement.String(); text != "" {
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	builder.WriteString("```\n")
}
