package client

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStorage keeps the saved bearer token and a local cache of the last
// listed todos, so the CLI can show something when the server is unreachable.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS todos (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			cached_at DATETIME NOT NULL
		);
	`)

	return err
}

func (s *SQLiteStorage) SaveToken(token string) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, token, saved_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at
	`, token, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	return nil
}

// LoadToken returns an empty string when no token has been saved.
func (s *SQLiteStorage) LoadToken() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT token FROM session WHERE id = 1`).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}

	return token, nil
}

func (s *SQLiteStorage) ClearToken() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}

	return nil
}

// CacheTodos replaces the local cache with the given items.
func (s *SQLiteStorage) CacheTodos(items []TodoItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache update: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM todos`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	now := time.Now().UTC()
	for _, item := range items {
		_, err := tx.Exec(
			`INSERT INTO todos (id, title, description, cached_at) VALUES (?, ?, ?, ?)`,
			item.ID, item.Title, item.Description, now,
		)
		if err != nil {
			return fmt.Errorf("cache todo: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStorage) CachedTodos() ([]TodoItem, error) {
	rows, err := s.db.Query(`SELECT id, title, description FROM todos ORDER BY cached_at, id`)
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	defer rows.Close()

	var items []TodoItem
	for rows.Next() {
		var item TodoItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description); err != nil {
			return nil, fmt.Errorf("scan cached todo: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
