// cmd/meal-balance/play_test.go
package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-meal-balance/internal/models"
	"mcp-meal-balance/internal/output"
	"mcp-meal-balance/internal/session"
)

type scriptedPrompter struct {
	difficulties []models.Difficulty
	profiles     []models.ProfileID
	actions      []action
	again        []bool

	profileCalls int
}

func (p *scriptedPrompter) Difficulty() (models.Difficulty, error) {
	if len(p.difficulties) == 0 {
		return "", errors.New("no difficulty scripted")
	}
	d := p.difficulties[0]
	p.difficulties = p.difficulties[1:]
	return d, nil
}

func (p *scriptedPrompter) Profile() (models.ProfileID, error) {
	p.profileCalls++
	if len(p.profiles) == 0 {
		return "", errors.New("no profile scripted")
	}
	id := p.profiles[0]
	p.profiles = p.profiles[1:]
	return id, nil
}

func (p *scriptedPrompter) Next(_ *session.Session) (action, error) {
	if len(p.actions) == 0 {
		return action{}, errors.New("no action scripted")
	}
	a := p.actions[0]
	p.actions = p.actions[1:]
	return a, nil
}

func (p *scriptedPrompter) PlayAgain() (bool, error) {
	if len(p.again) == 0 {
		return false, nil
	}
	a := p.again[0]
	p.again = p.again[1:]
	return a, nil
}

func add(id string) action { return action{kind: actionAdd, foodID: id} }

func TestPlayGame_BuildAndEvaluate(t *testing.T) {
	p := &scriptedPrompter{
		difficulties: []models.Difficulty{models.DifficultyMedium},
		profiles:     []models.ProfileID{models.ProfileAdultMale},
		actions: []action{
			{kind: actionEvaluate},
			add("rice"),
			add("boiled-egg"),
			add("grilled-salmon"),
			{kind: actionRemove, index: 1},
			{kind: actionRemove, index: 9},
			add("vegetable-salad"),
			{kind: actionEvaluate},
		},
	}

	var out bytes.Buffer
	require.NoError(t, playGame(p, &out, output.NewTextFormatter(&out)))

	text := out.String()
	assert.Contains(t, text, "Target: adult-male (difficulty: medium)")
	assert.Contains(t, text, "Pick at least one food before evaluating.")
	assert.Contains(t, text, "Cannot remove item")
	assert.Contains(t, text, "Total score: 680 / 1210")
}

func TestPlayGame_RejectsFoodsNotOffered(t *testing.T) {
	p := &scriptedPrompter{
		difficulties: []models.Difficulty{models.DifficultyEasy},
		profiles:     []models.ProfileID{models.ProfileChild},
		actions:      []action{add("tofu"), {kind: actionQuit}},
	}

	var out bytes.Buffer
	require.NoError(t, playGame(p, &out, output.NewTextFormatter(&out)))
	assert.Contains(t, out.String(), "Cannot add tofu")
	assert.NotContains(t, out.String(), "Total score")
}

func TestPlayGame_ChefModeSkipsProfilePrompt(t *testing.T) {
	p := &scriptedPrompter{
		difficulties: []models.Difficulty{models.DifficultyChef, models.DifficultyEasy},
		profiles:     []models.ProfileID{models.ProfileElderly},
		actions: []action{
			add("cucumber"), {kind: actionEvaluate},
			add("miso-soup"), {kind: actionEvaluate},
		},
		again: []bool{true, false},
	}

	var out bytes.Buffer
	require.NoError(t, playGame(p, &out, output.NewTextFormatter(&out)))

	text := out.String()
	assert.Equal(t, 1, p.profileCalls, "only the second, non-chef round asks for a profile")
	assert.Contains(t, text, "Targets (chef mode)")
	assert.Contains(t, text, "It is scored against adult-male.")
	assert.Contains(t, text, "Target: elderly (difficulty: easy)")
}

func TestPlayGame_PropagatesPromptErrors(t *testing.T) {
	p := &scriptedPrompter{}
	var out bytes.Buffer
	assert.Error(t, playGame(p, &out, output.NewTextFormatter(&out)))
}

func TestPlayGame_ResetClearsMeal(t *testing.T) {
	p := &scriptedPrompter{
		difficulties: []models.Difficulty{models.DifficultyEasy},
		profiles:     []models.ProfileID{models.ProfileChild},
		actions: []action{
			add("rice"),
			add("mapo-tofu"),
			{kind: actionReset},
			{kind: actionEvaluate},
			{kind: actionQuit},
		},
	}

	var out bytes.Buffer
	require.NoError(t, playGame(p, &out, output.NewTextFormatter(&out)))
	assert.Contains(t, out.String(), "Pick at least one food before evaluating.")
	assert.NotContains(t, out.String(), "Total score")
}
