package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flighttracker/internal/domain"
	_ "modernc.org/sqlite"
)

const sqlitePreferencesSchema = `CREATE TABLE IF NOT EXISTS preferences (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLitePreferenceRepository is the single-user default store.
type SQLitePreferenceRepository struct {
	db *sql.DB
}

// OpenSQLitePreferences opens or creates the database at path.
func OpenSQLitePreferences(path string) (*SQLitePreferenceRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec(sqlitePreferencesSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLitePreferenceRepository{db: db}, nil
}

func (r *SQLitePreferenceRepository) Close() error {
	return r.db.Close()
}

func (r *SQLitePreferenceRepository) Get(ctx context.Context, key string) (*domain.Preference, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM preferences WHERE key = ?`, key)
	var (
		p         domain.Preference
		updatedAt string
	)
	if err := row.Scan(&p.Key, &p.Value, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPreferenceNotFound
		}
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at for %s: %w", key, err)
	}
	p.UpdatedAt = ts
	return &p, nil
}

func (r *SQLitePreferenceRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

var _ PreferenceRepository = (*SQLitePreferenceRepository)(nil)
