package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SlotKey is the fixed name of the durable storage slot.
const SlotKey = "qwikish-tasks-storage"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS storage (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLiteAdapter persists the state as a JSON payload under SlotKey in a
// local SQLite database, alongside a small settings table for UI
// preferences.
type SQLiteAdapter struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and initializes the
// schema.
func OpenSQLite(path string) (*SQLiteAdapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteAdapter{db: db}, nil
}

// DefaultPath returns the database location under the XDG data directory,
// falling back to ~/.local/share.
func DefaultPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	appDir := filepath.Join(dataDir, "taskboard")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, "taskboard.db"), nil
}

// Close closes the underlying database.
func (a *SQLiteAdapter) Close() error {
	return a.db.Close()
}

// Load reads and decodes the slot. A missing slot yields (nil, nil); a
// payload that fails to decode is reported as an error so the caller can
// fall back to seed state.
func (a *SQLiteAdapter) Load() (*State, error) {
	var payload string
	err := a.db.QueryRow("SELECT value FROM storage WHERE key = ?", SlotKey).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("decode slot %q: %w", SlotKey, err)
	}
	return &state, nil
}

// Save serializes the state into the slot.
func (a *SQLiteAdapter) Save(state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", SlotKey, err)
	}
	_, err = a.db.Exec(`
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, SlotKey, string(payload))
	return err
}

// Reset deletes the slot entirely; the next Load yields seed state.
func (a *SQLiteAdapter) Reset() error {
	_, err := a.db.Exec("DELETE FROM storage WHERE key = ?", SlotKey)
	return err
}

// GetSetting retrieves a setting value by key
func (a *SQLiteAdapter) GetSetting(key string) (string, error) {
	var value string
	err := a.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetSetting sets a setting value
func (a *SQLiteAdapter) SetSetting(key, value string) error {
	_, err := a.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
