package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgPreferencesSchema = `CREATE TABLE IF NOT EXISTS preferences (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type PGPreferenceRepository struct {
	db *pgxpool.Pool
}

func NewPreferenceRepository(db *pgxpool.Pool) *PGPreferenceRepository {
	return &PGPreferenceRepository{db: db}
}

func (r *PGPreferenceRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, pgPreferencesSchema)
	return err
}

func (r *PGPreferenceRepository) Get(ctx context.Context, key string) (*domain.Preference, error) {
	row := r.db.QueryRow(ctx, `SELECT key, value, updated_at FROM preferences WHERE key=$1`, key)
	var p domain.Preference
	if err := row.Scan(&p.Key, &p.Value, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPreferenceNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPreferenceRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO preferences (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, key, value)
	return err
}

var _ PreferenceRepository = (*PGPreferenceRepository)(nil)
