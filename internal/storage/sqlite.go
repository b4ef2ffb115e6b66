// internal/storage/sqlite.go
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"mcp-meal-balance/internal/models"
)

// ErrSessionNotFound is returned when no active session has the requested id.
var ErrSessionNotFound = errors.New("session not found")

// SQLiteStorage keeps the active play session of each client. Only the meal
// currently being built is stored; evaluated meals are not kept.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Each connection to ":memory:" is its own database.
	db.SetMaxOpenConns(1)

	storage := &SQLiteStorage{db: db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS sessions (
        id TEXT PRIMARY KEY,
        difficulty TEXT NOT NULL,
        profile TEXT NOT NULL,
        display_targets TEXT NOT NULL,
        started_at TEXT NOT NULL,
        updated_at TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS session_items (
        session_id TEXT NOT NULL,
        position INTEGER NOT NULL,
        food_id TEXT NOT NULL,
        PRIMARY KEY (session_id, position),
        FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
    );
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SaveSession inserts or replaces the session and its full selection.
func (s *SQLiteStorage) SaveSession(snap models.SessionSnapshot) error {
	targets, err := json.Marshal(snap.DisplayTargets)
	if err != nil {
		return fmt.Errorf("failed to encode display targets: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	sessionQuery := `
        INSERT INTO sessions (id, difficulty, profile, display_targets, started_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            difficulty = excluded.difficulty,
            profile = excluded.profile,
            display_targets = excluded.display_targets,
            updated_at = excluded.updated_at
    `
	_, err = tx.Exec(sessionQuery,
		snap.ID, string(snap.Difficulty), string(snap.Profile), string(targets),
		snap.StartedAt.UTC().Format(time.RFC3339Nano), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM session_items WHERE session_id = ?`, snap.ID); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}

	itemQuery := `
        INSERT INTO session_items (session_id, position, food_id)
        VALUES (?, ?, ?)
    `
	for i, foodID := range snap.Selection {
		if _, err := tx.Exec(itemQuery, snap.ID, i, foodID); err != nil {
			return fmt.Errorf("failed to insert selection item: %w", err)
		}
	}

	return tx.Commit()
}

// GetSession loads a session by id.
func (s *SQLiteStorage) GetSession(id string) (*models.SessionSnapshot, error) {
	query := `
        SELECT id, difficulty, profile, display_targets, started_at
        FROM sessions
        WHERE id = ?
    `

	snap := &models.SessionSnapshot{}
	var difficulty, profile, targets, startedAt string

	err := s.db.QueryRow(query, id).Scan(&snap.ID, &difficulty, &profile, &targets, &startedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	snap.Difficulty = models.Difficulty(difficulty)
	snap.Profile = models.ProfileID(profile)
	if err := json.Unmarshal([]byte(targets), &snap.DisplayTargets); err != nil {
		return nil, fmt.Errorf("failed to decode display targets: %w", err)
	}
	if snap.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}

	if err := s.loadSelection(snap); err != nil {
		return nil, fmt.Errorf("failed to load selection for session %s: %w", snap.ID, err)
	}

	return snap, nil
}

func (s *SQLiteStorage) loadSelection(snap *models.SessionSnapshot) error {
	query := `
        SELECT food_id
        FROM session_items
        WHERE session_id = ?
        ORDER BY position
    `

	rows, err := s.db.Query(query, snap.ID)
	if err != nil {
		return fmt.Errorf("failed to query selection: %w", err)
	}
	defer rows.Close()

	selection := []string{}
	for rows.Next() {
		var foodID string
		if err := rows.Scan(&foodID); err != nil {
			return fmt.Errorf("failed to scan selection item: %w", err)
		}
		selection = append(selection, foodID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read selection: %w", err)
	}

	snap.Selection = selection
	return nil
}

// DeleteSession discards a session and its selection.
func (s *SQLiteStorage) DeleteSession(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM session_items WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete selection: %w", err)
	}
	res, err := tx.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return tx.Commit()
}
