// internal/models/food.go
package models

type Category string

const (
	CategoryStaple     Category = "staple"
	CategoryMain       Category = "main"
	CategorySide       Category = "side"
	CategoryIngredient Category = "ingredient"
)

// FoodEntry is one serving of a catalog food. Vegetable is a proxy quantity for
// vegetables/vitamins rather than a measured weight.
type FoodEntry struct {
	ID           string   `json:"id" yaml:"id" validate:"required"`
	Name         string   `json:"name" yaml:"name" validate:"required"`
	Category     Category `json:"category" yaml:"category" validate:"oneof=staple main side ingredient"`
	Protein      float64  `json:"protein" yaml:"protein" validate:"gte=0"`
	Fat          float64  `json:"fat" yaml:"fat" validate:"gte=0"`
	Carbohydrate float64  `json:"carbohydrate" yaml:"carbohydrate" validate:"gte=0"`
	Vegetable    float64  `json:"vegetable" yaml:"vegetable" validate:"gte=0"`
	Calories     float64  `json:"calories" yaml:"calories" validate:"gte=0"`
}

type NutrientTotals struct {
	Protein      float64 `json:"protein" yaml:"protein"`
	Fat          float64 `json:"fat" yaml:"fat"`
	Carbohydrate float64 `json:"carbohydrate" yaml:"carbohydrate"`
	Vegetable    float64 `json:"vegetable" yaml:"vegetable"`
	Calories     float64 `json:"calories" yaml:"calories"`
}

// Add accumulates one occurrence of the given food.
func (t *NutrientTotals) Add(f FoodEntry) {
	t.Protein += f.Protein
	t.Fat += f.Fat
	t.Carbohydrate += f.Carbohydrate
	t.Vegetable += f.Vegetable
	t.Calories += f.Calories
}
