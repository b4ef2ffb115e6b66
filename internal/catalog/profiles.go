// internal/catalog/profiles.go
package catalog

import (
	"mcp-meal-balance/internal/models"
)

// Recommended intake for a single meal, roughly a third of the daily amount.
var profiles = []models.TargetProfile{
	{
		ID:           models.ProfileChild,
		Name:         "Child",
		Protein:      models.Range{Min: 15, Max: 25},
		Fat:          models.Range{Min: 10, Max: 30},
		Carbohydrate: models.Range{Min: 70, Max: 120},
		VegetableMin: 50,
		CaloriesMax:  700,
	},
	{
		ID:           models.ProfileAdultMale,
		Name:         "Adult male",
		Protein:      models.Range{Min: 20, Max: 35},
		Fat:          models.Range{Min: 15, Max: 40},
		Carbohydrate: models.Range{Min: 100, Max: 160},
		VegetableMin: 100,
		CaloriesMax:  900,
	},
	{
		ID:           models.ProfileAdultFemale,
		Name:         "Adult female",
		Protein:      models.Range{Min: 18, Max: 30},
		Fat:          models.Range{Min: 12, Max: 35},
		Carbohydrate: models.Range{Min: 80, Max: 140},
		VegetableMin: 80,
		CaloriesMax:  800,
	},
	{
		ID:           models.ProfileElderly,
		Name:         "Elderly",
		Protein:      models.Range{Min: 25, Max: 35},
		Fat:          models.Range{Min: 10, Max: 30},
		Carbohydrate: models.Range{Min: 70, Max: 120},
		VegetableMin: 80,
		CaloriesMax:  750,
	},
}

// ChefModeProfile is the single profile chef mode is scored against. Chef mode
// shows several targets to the player but only this one is evaluated.
const ChefModeProfile = models.ProfileAdultMale

// LookupProfile returns the target profile for id. The boolean is false for any
// id outside the fixed set.
func LookupProfile(id models.ProfileID) (models.TargetProfile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			return p, true
		}
	}
	return models.TargetProfile{}, false
}

// Profiles returns all target profiles in display order.
func Profiles() []models.TargetProfile {
	out := make([]models.TargetProfile, len(profiles))
	copy(out, profiles)
	return out
}

// ProfileIDs returns the identifiers of all target profiles.
func ProfileIDs() []models.ProfileID {
	ids := make([]models.ProfileID, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	return ids
}
