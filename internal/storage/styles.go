// Package storage persists user-defined citation styles in SQLite.
// The store backs the registry's user-scoped override tier; bundled
// system styles never touch it.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ronginooth/citepress/internal/style"
)

// DB wraps a SQLite database holding user styles.
type DB struct {
	db *sql.DB
}

// Open opens or creates a style database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening style database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS user_styles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			display_name TEXT,
			style_json TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Put inserts or replaces a user style.
func (d *DB) Put(s style.Style) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding style %s: %w", s.ID, err)
	}

	_, err = d.db.Exec(`
		INSERT INTO user_styles (id, name, display_name, style_json, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			display_name = excluded.display_name,
			style_json = excluded.style_json,
			updated_at = excluded.updated_at
	`, s.ID, s.Name, s.DisplayName, string(data), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("storing style %s: %w", s.ID, err)
	}
	return nil
}

// Get returns the user style with the given id, or (nil, nil) when none
// exists. This satisfies style.UserStore.
func (d *DB) Get(id string) (*style.Style, error) {
	var data string
	err := d.db.QueryRow(`SELECT style_json FROM user_styles WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading style %s: %w", id, err)
	}

	var s style.Style
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("parsing stored style %s: %w", id, err)
	}
	return &s, nil
}

// List returns all user styles ordered by id.
func (d *DB) List() ([]style.Style, error) {
	rows, err := d.db.Query(`SELECT style_json FROM user_styles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing styles: %w", err)
	}
	defer rows.Close()

	var styles []style.Style
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning style row: %w", err)
		}
		var s style.Style
		if err := json.Unmarshal([]byte(data), &s); err != nil {
			return nil, fmt.Errorf("parsing stored style: %w", err)
		}
		styles = append(styles, s)
	}
	return styles, rows.Err()
}

// Delete removes a user style. Deleting a missing id is not an error.
func (d *DB) Delete(id string) error {
	if _, err := d.db.Exec(`DELETE FROM user_styles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting style %s: %w", id, err)
	}
	return nil
}
