// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-meal-balance/internal/models"
)

func TestValidate_CompiledTables(t *testing.T) {
	require.NoError(t, Validate())
}

func TestLookupFood(t *testing.T) {
	f, ok := LookupFood("grilled-salmon")
	require.True(t, ok)
	assert.Equal(t, models.CategoryMain, f.Category)
	assert.Equal(t, 40.0, f.Protein)
	assert.Equal(t, 250.0, f.Calories)

	_, ok = LookupFood("xyz")
	assert.False(t, ok, "unknown id should not resolve")

	_, ok = LookupFood("")
	assert.False(t, ok)
}

func TestFoods_CoversAllCategories(t *testing.T) {
	cats := map[models.Category]bool{}
	for _, f := range Foods() {
		cats[f.Category] = true
	}
	assert.Len(t, cats, 4)
}

func TestFoods_ReturnsCopy(t *testing.T) {
	list := Foods()
	list[0].Protein = 999

	f, ok := LookupFood(list[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, 999.0, f.Protein)
}

func TestFoodsFor(t *testing.T) {
	ids := func(entries []models.FoodEntry) []string {
		var out []string
		for _, e := range entries {
			out = append(out, e.ID)
		}
		return out
	}

	easy := ids(FoodsFor(models.DifficultyEasy))
	assert.NotContains(t, easy, "cucumber")
	assert.NotContains(t, easy, "tofu")
	assert.Contains(t, easy, "rice")
	assert.Contains(t, easy, "miso-soup")

	medium := ids(FoodsFor(models.DifficultyMedium))
	assert.Contains(t, medium, "cucumber")
	assert.Contains(t, medium, "tofu")

	assert.Len(t, FoodsFor(models.DifficultyHard), len(Foods()))
	assert.Len(t, FoodsFor(models.DifficultyChef), len(Foods()))
	assert.Empty(t, FoodsFor("impossible"))
}

func TestOffered(t *testing.T) {
	assert.False(t, Offered(models.DifficultyEasy, "tofu"))
	assert.True(t, Offered(models.DifficultyHard, "tofu"))
	assert.False(t, Offered(models.DifficultyHard, "xyz"))
}

func TestLookupProfile(t *testing.T) {
	p, ok := LookupProfile(models.ProfileAdultMale)
	require.True(t, ok)
	assert.Equal(t, models.Range{Min: 20, Max: 35}, p.Protein)
	assert.Equal(t, 100.0, p.VegetableMin)
	assert.Equal(t, 900.0, p.CaloriesMax)

	for _, id := range []models.ProfileID{"", "adult", "Adult-Male", "teen"} {
		_, ok := LookupProfile(id)
		assert.False(t, ok, "profile %q should not resolve", id)
	}
}

func TestProfileIDs(t *testing.T) {
	assert.Equal(t, []models.ProfileID{
		models.ProfileChild,
		models.ProfileAdultMale,
		models.ProfileAdultFemale,
		models.ProfileElderly,
	}, ProfileIDs())
}

func TestChefModeProfileResolves(t *testing.T) {
	_, ok := LookupProfile(ChefModeProfile)
	assert.True(t, ok)
}
