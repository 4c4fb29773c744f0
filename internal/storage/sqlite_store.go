package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"github.com/achieversos/achievers/internal/habit"
)

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
	key     TEXT PRIMARY KEY,
	payload TEXT NOT NULL
)`

type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSQLiteStore(db *sql.DB, logger *slog.Logger) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init app_state schema: %w", err)
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteStore(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the persisted event log. A missing row, an unreadable
// payload, or a query failure all come back as the empty state; the
// worst case is silent loss of the unreadable history, never a dead
// session.
func (s *SQLiteStore) Load(ctx context.Context) habit.State {
	row := s.db.QueryRowContext(ctx, `SELECT payload FROM app_state WHERE key = ?`, stateKey)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("state load failed, starting empty", "key", stateKey, "error", err)
		}
		return habit.NewState()
	}

	var state habit.State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		s.logger.Warn("state payload corrupt, starting empty", "key", stateKey, "error", err)
		return habit.NewState()
	}
	if state.History == nil {
		state.History = make(map[string][]string)
	}
	if state.StartedDays == nil {
		state.StartedDays = make([]string, 0)
	}
	return state
}

// Save serializes the event log and overwrites the record. Last write
// wins; there is no merge.
func (s *SQLiteStore) Save(ctx context.Context, state habit.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, payload) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		stateKey, string(payload),
	)
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}
