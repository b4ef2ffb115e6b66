// internal/models/meal.go
package models

import (
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyChef   Difficulty = "chef"
)

// Verdict classifies how one nutrient compares to the target profile.
type Verdict string

const (
	VerdictIdeal             Verdict = "ideal"
	VerdictDeficient         Verdict = "deficient"
	VerdictMildlyExcessive   Verdict = "mildly_excessive"
	VerdictSeverelyExcessive Verdict = "severely_excessive"
	VerdictMet               Verdict = "met"
	VerdictInsufficient      Verdict = "insufficient"
	VerdictAppropriate       Verdict = "appropriate"
	VerdictExcessive         Verdict = "excessive"
)

type Nutrient string

const (
	NutrientProtein      Nutrient = "protein"
	NutrientFat          Nutrient = "fat"
	NutrientCarbohydrate Nutrient = "carbohydrate"
	NutrientVegetable    Nutrient = "vegetable"
	NutrientCalories     Nutrient = "calories"
)

type Assessment struct {
	Nutrient Nutrient `json:"nutrient" yaml:"nutrient"`
	Value    float64  `json:"value" yaml:"value"`
	Verdict  Verdict  `json:"verdict" yaml:"verdict"`
	Points   int      `json:"points" yaml:"points"`
	Message  string   `json:"message" yaml:"message"`
}

type EvaluationResult struct {
	Profile        ProfileID      `json:"profile" yaml:"profile"`
	Selection      []string       `json:"selection" yaml:"selection"`
	Totals         NutrientTotals `json:"totals" yaml:"totals"`
	Assessments    []Assessment   `json:"assessments" yaml:"assessments"`
	DiversityBonus int            `json:"diversity_bonus" yaml:"diversity_bonus"`
	Score          int            `json:"score" yaml:"score"`
	MaxScore       int            `json:"max_score" yaml:"max_score"`
	Feedback       []string       `json:"feedback" yaml:"feedback"`
	Summary        string         `json:"summary" yaml:"summary"`
}

// SessionSnapshot is the stored form of an active play session.
type SessionSnapshot struct {
	ID             string      `json:"id" yaml:"id"`
	Difficulty     Difficulty  `json:"difficulty" yaml:"difficulty"`
	Profile        ProfileID   `json:"profile" yaml:"profile"`
	DisplayTargets []ProfileID `json:"display_targets,omitempty" yaml:"display_targets,omitempty"`
	Selection      []string    `json:"selection" yaml:"selection"`
	StartedAt      time.Time   `json:"started_at" yaml:"started_at"`
}
