// internal/evaluation/aggregate_test.go
package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mcp-meal-balance/internal/models"
)

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, models.NutrientTotals{}, Aggregate(nil))
	assert.Equal(t, models.NutrientTotals{}, Aggregate([]string{}))
}

func TestAggregate_SumsEachOccurrence(t *testing.T) {
	totals := Aggregate([]string{"rice", "rice", "miso-soup"})
	assert.Equal(t, models.NutrientTotals{
		Protein:      13,
		Fat:          3,
		Carbohydrate: 165,
		Vegetable:    20,
		Calories:     750,
	}, totals)
}

func TestAggregate_SkipsUnknownIDs(t *testing.T) {
	assert.Equal(t, models.NutrientTotals{}, Aggregate([]string{"xyz", "", "RICE"}))
	assert.Equal(t, Aggregate([]string{"tofu"}), Aggregate([]string{"xyz", "tofu", "pizza"}))
}

func TestAggregate_OrderIndependent(t *testing.T) {
	base := []string{"rice", "grilled-salmon", "vegetable-salad", "xyz"}
	want := Aggregate(base)

	for _, perm := range permutations(base) {
		assert.Equal(t, want, Aggregate(perm), "permutation %v", perm)
	}
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	selection := []string{"rice", "tofu"}
	Aggregate(selection)
	assert.Equal(t, []string{"rice", "tofu"}, selection)
}

func permutations(in []string) [][]string {
	if len(in) <= 1 {
		return [][]string{append([]string(nil), in...)}
	}
	var out [][]string
	for i := range in {
		rest := make([]string, 0, len(in)-1)
		rest = append(rest, in[:i]...)
		rest = append(rest, in[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]string{in[i]}, p...))
		}
	}
	return out
}
