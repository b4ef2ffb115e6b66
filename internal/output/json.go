// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"mcp-meal-balance/internal/models"
)

// JSONFormatter formats evaluation results as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

func (f *JSONFormatter) Format(result *models.EvaluationResult) error {
	enc := json.NewEncoder(f.writer)
	enc.SetEscapeHTML(false)
	if f.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
