// internal/session/session.go

// Package session tracks one player's game: the chosen difficulty, the target
// profile and the meal being built. A session is owned by a single caller and
// is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"mcp-meal-balance/internal/catalog"
	"mcp-meal-balance/internal/evaluation"
	"mcp-meal-balance/internal/models"
)

var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrFoodNotOffered    = errors.New("food is not offered at this difficulty")
	ErrIndexOutOfRange   = errors.New("selection index out of range")
)

// chefDisplayTargets is how many targets chef mode shows to the player.
const chefDisplayTargets = 3

type Session struct {
	id             string
	difficulty     models.Difficulty
	profile        models.ProfileID
	displayTargets []models.ProfileID
	selection      []string
	startedAt      time.Time
}

type options struct {
	rng *rand.Rand
	now func() time.Time
}

type Option func(*options)

// WithRand sets the random source used to draw chef mode display targets.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithClock overrides the clock used for the session start time.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New starts a session with an empty meal.
//
// In chef mode the player is shown several random targets, but the meal is
// always scored against catalog.ChefModeProfile and the profile argument is
// ignored.
func New(difficulty models.Difficulty, profile models.ProfileID, opts ...Option) (*Session, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if !catalog.ValidDifficulty(difficulty) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDifficulty, difficulty)
	}

	s := &Session{
		id:         uuid.NewString(),
		difficulty: difficulty,
		profile:    profile,
		selection:  []string{},
		startedAt:  o.now().UTC(),
	}

	if difficulty == models.DifficultyChef {
		s.profile = catalog.ChefModeProfile
		s.displayTargets = drawTargets(o.rng, chefDisplayTargets)
		return s, nil
	}

	if _, ok := catalog.LookupProfile(profile); !ok {
		return nil, fmt.Errorf("%w: %q", evaluation.ErrUnknownProfile, profile)
	}
	s.displayTargets = []models.ProfileID{profile}
	return s, nil
}

// Restore rebuilds a session from a stored snapshot.
func Restore(snap models.SessionSnapshot) (*Session, error) {
	if !catalog.ValidDifficulty(snap.Difficulty) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDifficulty, snap.Difficulty)
	}
	if _, ok := catalog.LookupProfile(snap.Profile); !ok {
		return nil, fmt.Errorf("%w: %q", evaluation.ErrUnknownProfile, snap.Profile)
	}
	if _, err := uuid.Parse(snap.ID); err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", snap.ID, err)
	}

	return &Session{
		id:             snap.ID,
		difficulty:     snap.Difficulty,
		profile:        snap.Profile,
		displayTargets: append([]models.ProfileID(nil), snap.DisplayTargets...),
		selection:      append([]string{}, snap.Selection...),
		startedAt:      snap.StartedAt,
	}, nil
}

func drawTargets(rng *rand.Rand, n int) []models.ProfileID {
	ids := catalog.ProfileIDs()
	out := make([]models.ProfileID, n)
	for i := range out {
		if rng != nil {
			out[i] = ids[rng.IntN(len(ids))]
		} else {
			out[i] = ids[rand.IntN(len(ids))]
		}
	}
	return out
}

func (s *Session) ID() string { return s.id }

func (s *Session) Difficulty() models.Difficulty { return s.difficulty }

// Profile is the profile the meal is scored against.
func (s *Session) Profile() models.ProfileID { return s.profile }

// DisplayTargets are the targets presented to the player. Outside chef mode
// this is just the scored profile.
func (s *Session) DisplayTargets() []models.ProfileID {
	return append([]models.ProfileID(nil), s.displayTargets...)
}

// Selection returns a copy of the meal in insertion order.
func (s *Session) Selection() []string {
	return append([]string{}, s.selection...)
}

// Offered lists the foods the player can pick from.
func (s *Session) Offered() []models.FoodEntry {
	return catalog.FoodsFor(s.difficulty)
}

// Add appends a food to the meal. Repeats are allowed.
func (s *Session) Add(foodID string) error {
	if !catalog.Offered(s.difficulty, foodID) {
		return fmt.Errorf("%w: %q (%s)", ErrFoodNotOffered, foodID, s.difficulty)
	}
	s.selection = append(s.selection, foodID)
	return nil
}

// Remove drops the item at index, keeping the order of the rest.
func (s *Session) Remove(index int) error {
	if index < 0 || index >= len(s.selection) {
		return fmt.Errorf("%w: %d (have %d items)", ErrIndexOutOfRange, index, len(s.selection))
	}
	s.selection = append(s.selection[:index], s.selection[index+1:]...)
	return nil
}

// Reset empties the meal.
func (s *Session) Reset() {
	s.selection = []string{}
}

// Evaluate scores the current meal.
func (s *Session) Evaluate() (*models.EvaluationResult, error) {
	return evaluation.Evaluate(s.selection, s.profile)
}

// Snapshot returns the storable form of the session.
func (s *Session) Snapshot() models.SessionSnapshot {
	return models.SessionSnapshot{
		ID:             s.id,
		Difficulty:     s.difficulty,
		Profile:        s.profile,
		DisplayTargets: s.DisplayTargets(),
		Selection:      s.Selection(),
		StartedAt:      s.startedAt,
	}
}
