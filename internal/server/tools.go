// internal/server/tools.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"mcp-meal-balance/internal/catalog"
	"mcp-meal-balance/internal/evaluation"
	"mcp-meal-balance/internal/models"
	"mcp-meal-balance/internal/session"
	"mcp-meal-balance/internal/storage"
)

var (
	errInvalidParams = errors.New("invalid parameters")
	errNotFound      = errors.New("not found")
)

type ListFoodsParams struct {
	Difficulty string `json:"difficulty,omitempty" description:"Only list foods offered at this difficulty (easy, medium, hard, chef)"`
}

type LookupFoodParams struct {
	FoodID string `json:"food_id" description:"Catalog food identifier"`
}

type LookupProfileParams struct {
	ProfileID string `json:"profile_id" description:"Target profile identifier (child, adult-male, adult-female, elderly)"`
}

type MealParams struct {
	Foods     []string `json:"foods" description:"Food identifiers making up the meal; repeats allowed"`
	ProfileID string   `json:"profile_id,omitempty" description:"Target profile to score against"`
}

type StartSessionParams struct {
	Difficulty        string `json:"difficulty" description:"Game difficulty (easy, medium, hard, chef)"`
	ProfileID         string `json:"profile_id,omitempty" description:"Target profile; ignored in chef mode"`
	PreviousSessionID string `json:"previous_session_id,omitempty" description:"Session to discard when starting over"`
}

type AddFoodParams struct {
	SessionID string `json:"session_id" description:"Active session id"`
	FoodID    string `json:"food_id" description:"Food to add to the meal"`
}

type RemoveFoodParams struct {
	SessionID string `json:"session_id" description:"Active session id"`
	Index     *int   `json:"index" description:"Zero-based position of the item to remove"`
}

type SessionParams struct {
	SessionID string `json:"session_id" description:"Active session id"`
}

type sessionResponse struct {
	Session models.SessionSnapshot `json:"session"`
	Offered []string               `json:"offered"`
}

// extractParams safely extracts parameters from the request arguments
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal arguments: %v", errInvalidParams, err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("%w: %v", errInvalidParams, err)
	}

	return nil
}

func (s *MealBalanceServer) handleListFoods(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ListFoodsParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	if params.Difficulty == "" {
		return s.createJSONResponse(catalog.Foods())
	}

	d := models.Difficulty(params.Difficulty)
	if !catalog.ValidDifficulty(d) {
		return nil, fmt.Errorf("%w: %q", session.ErrInvalidDifficulty, params.Difficulty)
	}
	return s.createJSONResponse(catalog.FoodsFor(d))
}

func (s *MealBalanceServer) handleLookupFood(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params LookupFoodParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if params.FoodID == "" {
		return nil, fmt.Errorf("%w: food_id is required", errInvalidParams)
	}

	food, ok := catalog.LookupFood(params.FoodID)
	if !ok {
		return nil, fmt.Errorf("food %q %w", params.FoodID, errNotFound)
	}
	return s.createJSONResponse(food)
}

func (s *MealBalanceServer) handleLookupProfile(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params LookupProfileParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if params.ProfileID == "" {
		return nil, fmt.Errorf("%w: profile_id is required", errInvalidParams)
	}

	profile, ok := catalog.LookupProfile(models.ProfileID(params.ProfileID))
	if !ok {
		return nil, fmt.Errorf("profile %q %w", params.ProfileID, errNotFound)
	}
	return s.createJSONResponse(profile)
}

func (s *MealBalanceServer) handleListProfiles(_ *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	return s.createJSONResponse(catalog.Profiles())
}

func (s *MealBalanceServer) handleAggregate(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params MealParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	return s.createJSONResponse(evaluation.Aggregate(params.Foods))
}

func (s *MealBalanceServer) handleEvaluateMeal(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params MealParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	result, err := evaluation.Evaluate(params.Foods, models.ProfileID(params.ProfileID))
	if err != nil {
		return nil, err
	}
	return s.createJSONResponse(result)
}

func (s *MealBalanceServer) handleStartSession(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params StartSessionParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	sess, err := session.New(models.Difficulty(params.Difficulty), models.ProfileID(params.ProfileID))
	if err != nil {
		return nil, err
	}

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	if params.PreviousSessionID != "" {
		if err := s.storage.DeleteSession(params.PreviousSessionID); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("failed to discard previous session: %w", err)
		}
	}

	if err := s.storage.SaveSession(sess.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	slog.Info("session started", "session_id", sess.ID(), "difficulty", sess.Difficulty(), "profile", sess.Profile())

	return s.createJSONResponse(newSessionResponse(sess))
}

func (s *MealBalanceServer) handleAddFood(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params AddFoodParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	return s.updateSession(params.SessionID, func(sess *session.Session) error {
		return sess.Add(params.FoodID)
	})
}

func (s *MealBalanceServer) handleRemoveFood(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params RemoveFoodParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if params.Index == nil {
		return nil, fmt.Errorf("%w: index is required", errInvalidParams)
	}

	return s.updateSession(params.SessionID, func(sess *session.Session) error {
		return sess.Remove(*params.Index)
	})
}

func (s *MealBalanceServer) handleEvaluateSession(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params SessionParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	sess, err := s.loadSession(params.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := sess.Evaluate()
	if err != nil {
		return nil, err
	}
	slog.Info("meal evaluated", "session_id", sess.ID(), "score", result.Score)

	return s.createJSONResponse(result)
}

func (s *MealBalanceServer) loadSession(id string) (*session.Session, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: session_id is required", errInvalidParams)
	}

	snap, err := s.storage.GetSession(id)
	if err != nil {
		return nil, err
	}
	return session.Restore(*snap)
}

func (s *MealBalanceServer) updateSession(id string, mutate func(*session.Session) error) (*protocol.CallToolResult, error) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	sess, err := s.loadSession(id)
	if err != nil {
		return nil, err
	}
	if err := mutate(sess); err != nil {
		return nil, err
	}
	if err := s.storage.SaveSession(sess.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return s.createJSONResponse(newSessionResponse(sess))
}

func newSessionResponse(sess *session.Session) sessionResponse {
	offered := []string{}
	for _, f := range sess.Offered() {
		offered = append(offered, f.ID)
	}
	return sessionResponse{Session: sess.Snapshot(), Offered: offered}
}

func (s *MealBalanceServer) registerTools() {
	s.tools = map[string]toolHandler{
		"list_foods":       s.handleListFoods,
		"lookup_food":      s.handleLookupFood,
		"lookup_profile":   s.handleLookupProfile,
		"list_profiles":    s.handleListProfiles,
		"aggregate":        s.handleAggregate,
		"evaluate_meal":    s.handleEvaluateMeal,
		"start_session":    s.handleStartSession,
		"add_food":         s.handleAddFood,
		"remove_food":      s.handleRemoveFood,
		"evaluate_session": s.handleEvaluateSession,
	}

	for name := range s.tools {
		slog.Debug("registered tool", "tool", name)
	}
}
