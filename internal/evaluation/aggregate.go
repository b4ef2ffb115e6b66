// internal/evaluation/aggregate.go
package evaluation

import (
	"mcp-meal-balance/internal/catalog"
	"mcp-meal-balance/internal/models"
)

// Aggregate sums the nutrients of every selected food. Identifiers missing from
// the catalog contribute nothing and are not reported.
func Aggregate(selection []string) models.NutrientTotals {
	var totals models.NutrientTotals
	for _, id := range selection {
		if food, ok := catalog.LookupFood(id); ok {
			totals.Add(food)
		}
	}
	return totals
}
