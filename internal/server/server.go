// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"mcp-meal-balance/internal/config"
	"mcp-meal-balance/internal/evaluation"
	"mcp-meal-balance/internal/session"
	"mcp-meal-balance/internal/storage"
)

type toolHandler func(*protocol.CallToolRequest) (*protocol.CallToolResult, error)

// MealBalanceServer answers MCP tool calls posted as JSON to a single HTTP
// endpoint.
type MealBalanceServer struct {
	httpServer *http.Server
	storage    *storage.SQLiteStorage
	config     *config.Config
	tools      map[string]toolHandler

	// sessionMu serializes load-modify-save of stored sessions.
	sessionMu sync.Mutex
}

func NewMealBalanceServer(cfg *config.Config) (*MealBalanceServer, error) {
	stor, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	mealServer := &MealBalanceServer{
		storage: stor,
		config:  cfg,
	}

	mealServer.registerTools()

	mux := http.NewServeMux()
	mux.HandleFunc("/", mealServer.handleHTTP)

	mealServer.httpServer = &http.Server{
		Addr:    cfg.Addr(),
		Handler: mux,
	}

	return mealServer, nil
}

func (s *MealBalanceServer) handleHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	handler, ok := s.tools[request.Name]
	if !ok {
		http.Error(w, fmt.Sprintf("Unknown tool: %s", request.Name), http.StatusNotFound)
		return
	}

	result, err := handler(&request)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			slog.Error("tool call failed", "tool", request.Name, "error", err)
		} else {
			slog.Debug("tool call rejected", "tool", request.Name, "status", status, "error", err)
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "tool", request.Name, "error", err)
	}
}

// statusFor maps tool errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrSessionNotFound),
		errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, errInvalidParams),
		errors.Is(err, evaluation.ErrUnknownProfile),
		errors.Is(err, evaluation.ErrEmptySelection),
		errors.Is(err, session.ErrInvalidDifficulty),
		errors.Is(err, session.ErrFoodNotOffered),
		errors.Is(err, session.ErrIndexOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *MealBalanceServer) Start(ctx context.Context) error {
	slog.Info("starting meal balance server", "addr", s.httpServer.Addr, "transport", s.config.Transport)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *MealBalanceServer) Stop(ctx context.Context) error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}
	if s.storage != nil {
		if cerr := s.storage.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (s *MealBalanceServer) createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
