// internal/models/profile.go
package models

type ProfileID string

const (
	ProfileChild       ProfileID = "child"
	ProfileAdultMale   ProfileID = "adult-male"
	ProfileAdultFemale ProfileID = "adult-female"
	ProfileElderly     ProfileID = "elderly"
)

// Range is an inclusive acceptable range in grams.
type Range struct {
	Min float64 `json:"min" yaml:"min" validate:"gte=0"`
	Max float64 `json:"max" yaml:"max" validate:"gtefield=Min"`
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// TargetProfile holds the per-meal recommended intake for one demographic.
type TargetProfile struct {
	ID           ProfileID `json:"id" yaml:"id" validate:"oneof=child adult-male adult-female elderly"`
	Name         string    `json:"name" yaml:"name" validate:"required"`
	Protein      Range     `json:"protein" yaml:"protein"`
	Fat          Range     `json:"fat" yaml:"fat"`
	Carbohydrate Range     `json:"carbohydrate" yaml:"carbohydrate"`
	VegetableMin float64   `json:"vegetable_min" yaml:"vegetable_min" validate:"gte=0"`
	CaloriesMax  float64   `json:"calories_max" yaml:"calories_max" validate:"gt=0"`
}
