// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-meal-balance/internal/evaluation"
	"mcp-meal-balance/internal/models"
)

func sampleResult(t *testing.T) *models.EvaluationResult {
	t.Helper()
	result, err := evaluation.Evaluate([]string{"rice", "grilled-salmon", "vegetable-salad"}, models.ProfileAdultMale)
	require.NoError(t, err)
	return result
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).Format(sampleResult(t)))

	out := buf.String()
	assert.Contains(t, out, "Total score: 680 / 1210")
	assert.Contains(t, out, "Meal: rice, grilled-salmon, vegetable-salad")
	assert.Contains(t, out, "✅ Fat: ideal intake (15-40g achieved).")
	assert.Contains(t, out, "Variety bonus: +30")
	assert.Contains(t, out, "Total calories: 700 kcal")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, true).Format(sampleResult(t)))

	var decoded models.EvaluationResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 680, decoded.Score)
	assert.Equal(t, models.ProfileAdultMale, decoded.Profile)
	assert.Len(t, decoded.Feedback, 5)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(sampleResult(t)))

	var decoded struct {
		Score   int    `yaml:"score"`
		Profile string `yaml:"profile"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 680, decoded.Score)
	assert.Equal(t, "adult-male", decoded.Profile)
}

func TestNewFormatter(t *testing.T) {
	var buf bytes.Buffer
	for _, name := range Formats {
		f, err := NewFormatter(name, &buf)
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}

	_, err := NewFormatter("xml", &buf)
	assert.ErrorContains(t, err, "unsupported output format")
}
