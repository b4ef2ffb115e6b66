// internal/catalog/foods.go

// Package catalog holds the fixed food and target profile tables the game is
// scored against. The tables are compiled in and never mutated.
package catalog

import (
	"mcp-meal-balance/internal/models"
)

// Per-serving values. Vegetable is a proxy amount, not a weight.
var foods = []models.FoodEntry{
	{ID: "rice", Name: "Rice", Category: models.CategoryStaple, Protein: 5, Fat: 1, Carbohydrate: 80, Vegetable: 0, Calories: 350},
	{ID: "grilled-salmon", Name: "Grilled salmon", Category: models.CategoryMain, Protein: 40, Fat: 10, Carbohydrate: 0, Vegetable: 0, Calories: 250},
	{ID: "cucumber", Name: "Cucumber", Category: models.CategoryIngredient, Protein: 1, Fat: 0, Carbohydrate: 5, Vegetable: 50, Calories: 15},
	{ID: "boiled-egg", Name: "Boiled egg", Category: models.CategoryMain, Protein: 15, Fat: 12, Carbohydrate: 1, Vegetable: 0, Calories: 160},
	{ID: "tofu", Name: "Tofu (firm)", Category: models.CategoryIngredient, Protein: 10, Fat: 6, Carbohydrate: 2, Vegetable: 0, Calories: 100},
	{ID: "mapo-tofu", Name: "Mapo tofu", Category: models.CategoryMain, Protein: 20, Fat: 20, Carbohydrate: 10, Vegetable: 10, Calories: 300},
	{ID: "vegetable-salad", Name: "Vegetable salad", Category: models.CategorySide, Protein: 5, Fat: 5, Carbohydrate: 10, Vegetable: 80, Calories: 100},
	{ID: "miso-soup", Name: "Miso soup", Category: models.CategorySide, Protein: 3, Fat: 1, Carbohydrate: 5, Vegetable: 20, Calories: 50},
}

var foodIndex = func() map[string]models.FoodEntry {
	idx := make(map[string]models.FoodEntry, len(foods))
	for _, f := range foods {
		idx[f.ID] = f
	}
	return idx
}()

// Ingredients still offered at medium difficulty.
var mediumIngredients = map[string]bool{
	"cucumber": true,
	"tofu":     true,
}

// LookupFood returns the catalog entry for id. The boolean is false when the id is
// not in the catalog.
func LookupFood(id string) (models.FoodEntry, bool) {
	f, ok := foodIndex[id]
	return f, ok
}

// Foods returns every catalog entry in display order.
func Foods() []models.FoodEntry {
	out := make([]models.FoodEntry, len(foods))
	copy(out, foods)
	return out
}

// FoodsFor returns the foods offered to the player at the given difficulty. Easy
// only offers finished dishes, medium adds a couple of raw ingredients, and hard
// and chef offer everything. An unknown difficulty offers nothing.
func FoodsFor(d models.Difficulty) []models.FoodEntry {
	var out []models.FoodEntry
	for _, f := range foods {
		if offered(d, f) {
			out = append(out, f)
		}
	}
	return out
}

// Offered reports whether the food id can be picked at difficulty d.
func Offered(d models.Difficulty, id string) bool {
	f, ok := foodIndex[id]
	if !ok {
		return false
	}
	return offered(d, f)
}

func offered(d models.Difficulty, f models.FoodEntry) bool {
	switch d {
	case models.DifficultyEasy:
		return f.Category != models.CategoryIngredient
	case models.DifficultyMedium:
		return f.Category != models.CategoryIngredient || mediumIngredients[f.ID]
	case models.DifficultyHard, models.DifficultyChef:
		return true
	default:
		return false
	}
}

// ValidDifficulty reports whether d is one of the known difficulty levels.
func ValidDifficulty(d models.Difficulty) bool {
	switch d {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard, models.DifficultyChef:
		return true
	}
	return false
}
