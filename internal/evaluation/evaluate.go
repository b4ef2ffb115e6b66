// internal/evaluation/evaluate.go
package evaluation

import (
	"fmt"
	"strconv"

	"mcp-meal-balance/internal/catalog"
	"mcp-meal-balance/internal/models"
)

// MaxScore is the score shown to players as the maximum. It is not enforced: the
// diversity bonus grows with every item, so long selections can exceed it.
const MaxScore = 1210

// Points per verdict.
const (
	macroIdealPoints        = 200
	macroDeficientPoints    = 50
	macroMildExcessPoints   = 100
	macroSevereExcessPoints = 0

	vegetableMetPoints          = 300
	vegetableInsufficientPoints = 100

	caloriesAppropriatePoints  = 200
	caloriesExcessivePoints    = 50
	caloriesInsufficientPoints = 100

	diversityPointsPerItem = 10
)

const (
	severeExcessFactor = 1.5
	calorieFloorFactor = 0.7
)

var nutrientLabels = map[models.Nutrient]string{
	models.NutrientProtein:      "Protein",
	models.NutrientFat:          "Fat",
	models.NutrientCarbohydrate: "Carbohydrate",
	models.NutrientVegetable:    "Vegetables/vitamins",
	models.NutrientCalories:     "Calories",
}

// Evaluate scores the selection against the profile identified by profileID.
//
// The profile is resolved first, so an unknown profile yields ErrUnknownProfile
// even for an empty selection. An empty selection yields ErrEmptySelection.
// Feedback is ordered protein, fat, carbohydrate, vegetables, calories.
func Evaluate(selection []string, profileID models.ProfileID) (*models.EvaluationResult, error) {
	profile, ok := catalog.LookupProfile(profileID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, profileID)
	}
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	totals := Aggregate(selection)

	assessments := []models.Assessment{
		assessMacro(models.NutrientProtein, totals.Protein, profile.Protein),
		assessMacro(models.NutrientFat, totals.Fat, profile.Fat),
		assessMacro(models.NutrientCarbohydrate, totals.Carbohydrate, profile.Carbohydrate),
		assessVegetable(totals.Vegetable, profile.VegetableMin),
		assessCalories(totals.Calories, profile.CaloriesMax),
	}

	// Counts raw selection length, unknown ids and repeats included.
	bonus := len(selection) * diversityPointsPerItem

	score := bonus
	feedback := make([]string, 0, len(assessments))
	for _, a := range assessments {
		score += a.Points
		feedback = append(feedback, a.Message)
	}

	return &models.EvaluationResult{
		Profile:        profile.ID,
		Selection:      append([]string(nil), selection...),
		Totals:         totals,
		Assessments:    assessments,
		DiversityBonus: bonus,
		Score:          score,
		MaxScore:       MaxScore,
		Feedback:       feedback,
		Summary:        Summary(totals, profile),
	}, nil
}

func assessMacro(n models.Nutrient, value float64, r models.Range) models.Assessment {
	label := nutrientLabels[n]
	a := models.Assessment{Nutrient: n, Value: value}

	switch {
	case r.Contains(value):
		a.Verdict = models.VerdictIdeal
		a.Points = macroIdealPoints
		a.Message = fmt.Sprintf("✅ %s: ideal intake (%s-%sg achieved).", label, num(r.Min), num(r.Max))
	case value < r.Min:
		a.Verdict = models.VerdictDeficient
		a.Points = macroDeficientPoints
		a.Message = fmt.Sprintf("⚠️ %s: not enough! At least %sg is needed.", label, num(r.Min))
	case value > r.Max*severeExcessFactor:
		a.Verdict = models.VerdictSeverelyExcessive
		a.Points = macroSevereExcessPoints
		a.Message = fmt.Sprintf("❌ %s: far too much! This is a health concern.", label)
	default:
		a.Verdict = models.VerdictMildlyExcessive
		a.Points = macroMildExcessPoints
		a.Message = fmt.Sprintf("⚠️ %s: slightly too much. Keep it to %sg at most.", label, num(r.Max))
	}
	return a
}

func assessVegetable(value, minimum float64) models.Assessment {
	label := nutrientLabels[models.NutrientVegetable]
	a := models.Assessment{Nutrient: models.NutrientVegetable, Value: value}

	if value >= minimum {
		a.Verdict = models.VerdictMet
		a.Points = vegetableMetPoints
		a.Message = fmt.Sprintf("✅ %s: reached the %sg target!", label, num(minimum))
	} else {
		a.Verdict = models.VerdictInsufficient
		a.Points = vegetableInsufficientPoints
		a.Message = fmt.Sprintf("⚠️ %s: not enough. Try adding more vegetables.", label)
	}
	return a
}

func assessCalories(value, ceiling float64) models.Assessment {
	label := nutrientLabels[models.NutrientCalories]
	a := models.Assessment{Nutrient: models.NutrientCalories, Value: value}

	switch {
	case value <= ceiling && value >= ceiling*calorieFloorFactor:
		a.Verdict = models.VerdictAppropriate
		a.Points = caloriesAppropriatePoints
		a.Message = fmt.Sprintf("✅ %s: within the appropriate range (%skcal).", label, num(value))
	case value > ceiling:
		a.Verdict = models.VerdictExcessive
		a.Points = caloriesExcessivePoints
		a.Message = fmt.Sprintf("⚠️ %s: too much (%skcal).", label, num(value))
	default:
		a.Verdict = models.VerdictInsufficient
		a.Points = caloriesInsufficientPoints
		a.Message = fmt.Sprintf("⚠️ %s: a little short (%skcal).", label, num(value))
	}
	return a
}

// num renders a quantity without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
