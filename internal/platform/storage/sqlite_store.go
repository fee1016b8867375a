package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a single-file blob store at
// dbPath. The parent directory is created as well.
func NewSQLiteStore(dbPath string) (BlobStore, func() error, error) {
	if dbPath == "" {
		return nil, nil, errors.New("db path must not be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}

	if err := createBlobSchema(db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return &sqliteStore{db: db}, db.Close, nil
}

func createBlobSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS shop_blobs (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create blob schema: %w", err)
	}
	return nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM shop_blobs WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO shop_blobs (key, value) VALUES (?, ?)`, key, value)
	return err
}
