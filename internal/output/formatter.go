// internal/output/formatter.go

// Package output renders evaluation results for the CLI.
package output

import (
	"fmt"
	"io"

	"mcp-meal-balance/internal/models"
)

// Formatter writes an evaluation result in one output format.
type Formatter interface {
	Format(result *models.EvaluationResult) error
}

// Formats lists the supported format names.
var Formats = []string{"text", "json", "yaml"}

// NewFormatter returns the formatter for format writing to w.
func NewFormatter(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "text", "":
		return NewTextFormatter(w), nil
	case "json":
		return NewJSONFormatter(w, true), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (supported: text, json, yaml)", format)
	}
}
