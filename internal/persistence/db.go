// Package persistence provides SQLite-based save-slot storage for the
// economy state.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/tradewinds/internal/economy"
)

// DB wraps a SQLite connection for save-slot persistence.
type DB struct {
	conn *sqlx.DB
}

// Slot is one save slot.
type Slot struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS save_slots (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS economy_state (
		slot_id TEXT PRIMARY KEY REFERENCES save_slots(id) ON DELETE CASCADE,
		blob TEXT NOT NULL,
		saved_tick INTEGER NOT NULL,
		saved_at TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// CreateSlot creates a new save slot and returns its id.
func (db *DB) CreateSlot(name string) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.conn.Exec(
		"INSERT INTO save_slots (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)",
		id, name, now, now,
	)
	if err != nil {
		return "", fmt.Errorf("create slot: %w", err)
	}
	return id, nil
}

// Slots lists all save slots, most recently updated first.
func (db *DB) Slots() ([]Slot, error) {
	var slots []Slot
	err := db.conn.Select(&slots,
		"SELECT id, name, created_at, updated_at FROM save_slots ORDER BY updated_at DESC")
	return slots, err
}

// LatestSlot returns the most recently updated slot, or false if none exist.
func (db *DB) LatestSlot() (Slot, bool, error) {
	var slot Slot
	err := db.conn.Get(&slot,
		"SELECT id, name, created_at, updated_at FROM save_slots ORDER BY updated_at DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return Slot{}, false, nil
	}
	if err != nil {
		return Slot{}, false, err
	}
	return slot, true, nil
}

// DeleteSlot removes a slot and its economy state (new-game wipe).
func (db *DB) DeleteSlot(slotID string) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM economy_state WHERE slot_id = ?", slotID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM save_slots WHERE id = ?", slotID); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveState writes a slot's entire economy state as one JSON blob.
func (db *DB) SaveState(slotID string, state *economy.State, tick uint64) error {
	blob, err := json.Marshal(state.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT OR REPLACE INTO economy_state (slot_id, blob, saved_tick, saved_at) VALUES (?, ?, ?, ?)",
		slotID, string(blob), tick, now,
	)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if _, err := tx.Exec("UPDATE save_slots SET updated_at = ? WHERE id = ?", now, slotID); err != nil {
		return fmt.Errorf("touch slot: %w", err)
	}
	return tx.Commit()
}

// LoadState restores a slot's economy state and the tick it was saved at.
// A missing or malformed blob degrades to a fresh state; a broken save must
// never block the session from starting.
func (db *DB) LoadState(slotID string) (*economy.State, uint64) {
	var row struct {
		Blob      string `db:"blob"`
		SavedTick uint64 `db:"saved_tick"`
	}
	err := db.conn.Get(&row,
		"SELECT blob, saved_tick FROM economy_state WHERE slot_id = ?", slotID)
	if errors.Is(err, sql.ErrNoRows) {
		return economy.NewState(), 0
	}
	if err != nil {
		slog.Warn("load state failed, starting fresh", "slot", slotID, "error", err)
		return economy.NewState(), 0
	}

	var snap economy.Snapshot
	if err := json.Unmarshal([]byte(row.Blob), &snap); err != nil {
		slog.Warn("save blob corrupt, starting fresh", "slot", slotID, "error", err)
		return economy.NewState(), 0
	}
	return economy.FromSnapshot(&snap), row.SavedTick
}
