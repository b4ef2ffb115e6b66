// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"mcp-meal-balance/internal/models"
)

// TextFormatter renders the result the way the game shows it to a player.
type TextFormatter struct {
	writer io.Writer
}

func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

func (f *TextFormatter) Format(result *models.EvaluationResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Total score: %d / %d\n", result.Score, result.MaxScore)
	fmt.Fprintf(&b, "Target: %s\n", result.Profile)
	fmt.Fprintf(&b, "Meal: %s\n", strings.Join(result.Selection, ", "))
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	for _, line := range result.Feedback {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Variety bonus: +%d\n", result.DiversityBonus)
	b.WriteString("\n")
	b.WriteString(result.Summary)

	_, err := io.WriteString(f.writer, b.String())
	return err
}
