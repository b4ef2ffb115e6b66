// internal/evaluation/summary.go
package evaluation

import (
	"fmt"
	"strings"

	"mcp-meal-balance/internal/models"
)

// Summary renders the nutrient totals next to the active profile's thresholds.
func Summary(totals models.NutrientTotals, profile models.TargetProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Nutrition summary (target: %s-%sP, %sV, max %skcal) ---\n",
		num(profile.Protein.Min), num(profile.Protein.Max), num(profile.VegetableMin), num(profile.CaloriesMax))
	fmt.Fprintf(&b, "P (protein): %s g\n", num(totals.Protein))
	fmt.Fprintf(&b, "L (fat): %s g\n", num(totals.Fat))
	fmt.Fprintf(&b, "C (carbohydrate): %s g\n", num(totals.Carbohydrate))
	fmt.Fprintf(&b, "V (vegetables, proxy): %s g\n", num(totals.Vegetable))
	fmt.Fprintf(&b, "Total calories: %s kcal\n", num(totals.Calories))
	return b.String()
}
