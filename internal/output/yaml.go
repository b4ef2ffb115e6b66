// internal/output/yaml.go
package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"mcp-meal-balance/internal/models"
)

// YAMLFormatter formats evaluation results as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

func (f *YAMLFormatter) Format(result *models.EvaluationResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	_, err = f.writer.Write(data)
	return err
}
